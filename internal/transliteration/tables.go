package transliteration

// Chuvash orthography. Rows are kept exactly as authored, including repeated
// sources; NewTable resolves repeats to the last value.

var cyrillicLatinRows = []Pair{
	{",", Single(",")}, {"а", Single("a")}, {"б", Single("p")}, {"в", Single("v")},
	{"г", Single("k")}, {"д", Single("t")}, {"ӑ", Single("o")}, {"ă", Single("o")},
	{"е", Variants("e", "ye")}, {"ж", Single("ş")}, {"з", Single("s")}, {"ĕ", Single("ö")},
	{"ӗ", Single("ö")}, {"и", Single("i")}, {"й", Single("y")}, {"к", Single("k")},
	{"л", Single("l")}, {"м", Single("m")}, {"н", Single("n")}, {"о", Single("o")},
	{"п", Single("p")}, {"р", Single("r")}, {"с", Single("s")}, {"ç", Single("c")},
	{"ҫ", Single("c")}, {"т", Single("t")}, {"у", Single("u")}, {"ӳ", Single("ü")},
	{"ÿ", Single("ü")}, {"ф", Single("f")}, {"х", Single("x")}, {"ц", Single("ts")},
	{"ч", Single("ç")}, {"щ", Single("şç")}, {"ш", Single("ş")}, {"ы", Single("ı")},
	{"э", Single("e")}, {"ю", Single("yu")}, {"я", Single("ya")}, {"ь", Single("′")},
	{"ъ", Single("")}, {"?", Single("?")}, {"А", Single("A")}, {"Б", Single("P")},
	{"В", Single("V")}, {"Г", Single("K")}, {"Д", Single("T")}, {"Ă", Single("O")},
	{"Ӑ", Single("O")}, {"Е", Single("E")}, {"Ĕ", Single("Ö")}, {"Ӗ", Single("Ö")},
	{"Ж", Single("Ş")}, {"З", Single("S")}, {"И", Single("İ")}, {"Й", Single("Y")},
	{"К", Single("K")}, {"Л", Single("L")}, {"М", Single("M")}, {"Н", Single("N")},
	{"О", Single("O")}, {"П", Single("P")}, {"Р", Single("R")}, {"С", Single("S")},
	{"Ç", Single("C")}, {"Ҫ", Single("C")}, {"Т", Single("T")}, {"У", Single("U")},
	{"Ӳ", Single("Ü")}, {"Ÿ", Single("Ü")}, {"Ф", Single("F")}, {"Х", Single("X")},
	{"Ц", Single("Ts")}, {"Ч", Single("Ç")}, {"Щ", Single("Şç")}, {"Ш", Single("Ş")},
	{"Ы", Single("I")}, {"Э", Single("E")}, {"Ю", Single("Yu")}, {"Я", Single("Ya")},
	{"Ь", Single("′")}, {"Ъ", Single("")}, {"?", Single("?")},
}

var cyrillicArabicRows = []Pair{
	{";", Single("؛")}, {",", Single("،")}, {"а", Single("ا")}, {"б", Single("پ")},
	{"в", Single("ۋ")}, {"ӑ", Single("أ")}, {"ă", Single("أ")}, {"е", Single("ە")},
	{"з", Single("س")}, {"ĕ", Single("ۀ")}, {"ӗ", Single("ۀ")}, {"и", Single("ې")},
	{"й", Single("ي")}, {"к", Single("ك")}, {"л", Single("ل")}, {"м", Single("م")},
	{"н", Single("ن")}, {"о", Single("و")}, {"п", Single("پ")}, {"р", Single("ر")},
	{"с", Single("س")}, {"ç", Single("ج")}, {"ҫ", Single("ج")}, {"т", Single("ت")},
	{"у", Single("و")}, {"ӳ", Single("ۆ")}, {"ф", Single("ف")}, {"х", Single("خ")},
	{"ц", Single("تس")}, {"ч", Single("چ")}, {"ш", Single("ش")}, {"ы", Single("ى")},
	{"э", Single("ە")}, {"ю", Single("يو")}, {"я", Single("يا")}, {"ь", Single("ٰ")},
	{"ъ", Single("")}, {"?", Single("؟")}, {"А", Single("ا")}, {"Б", Single("پ")},
	{"В", Single("ۋ")}, {"Ă", Single("أ")}, {"Ӑ", Single("أ")}, {"Е", Single("ە")},
	{"Ĕ", Single("ۀ")}, {"Ӗ", Single("ۀ")}, {"З", Single("س")}, {"И", Single("ې")},
	{"Й", Single("ي")}, {"К", Single("ك")}, {"Л", Single("ل")}, {"М", Single("م")},
	{"Н", Single("ن")}, {"О", Single("و")}, {"П", Single("پ")}, {"Р", Single("ر")},
	{"С", Single("س")}, {"Ç", Single("ج")}, {"Ҫ", Single("ج")}, {"Т", Single("ت")},
	{"У", Single("و")}, {"Ӳ", Single("ۆ")}, {"Ф", Single("ف")}, {"Х", Single("خ")},
	{"Ц", Single("تس")}, {"Ч", Single("چ")}, {"Ш", Single("ش")}, {"Ы", Single("ى")},
	{"Э", Single("ە")}, {"Ю", Single("يو")}, {"Я", Single("يا")}, {"Ь", Single("ٰ")},
	{"Ъ", Single("")}, {"?", Single("؟")},
}

var arabicLatinRows = []Pair{
	{"ا", Single("a")}, {"ب", Single("b")}, {"پ", Single("p")}, {"ت", Single("t")},
	{"ث", Single("th")}, {"ج", Single("j")}, {"چ", Single("ch")}, {"ح", Single("h")},
	{"خ", Single("kh")}, {"د", Single("d")}, {"ذ", Single("dh")}, {"ر", Single("r")},
	{"ز", Single("z")}, {"س", Single("s")}, {"ش", Single("sh")}, {"ص", Single("s")},
	{"ض", Single("d")}, {"ط", Single("t")}, {"ظ", Single("z")}, {"ع", Single("a")},
	{"غ", Single("gh")}, {"ف", Single("f")}, {"ق", Single("q")}, {"ك", Single("k")},
	{"ل", Single("l")}, {"م", Single("m")}, {"ن", Single("n")}, {"ه", Single("h")},
	{"و", Single("w")}, {"ي", Single("y")}, {"ى", Single("a")}, {"ء", Single("'")},
	{"ئ", Single("y")}, {"ؤ", Single("w")}, {"ة", Single("h")}, {"آ", Single("a")},
	{"أ", Single("a")}, {"إ", Single("i")}, {"ؤ", Single("u")}, {"ئ", Single("i")},
	{"ى", Single("a")}, {"ة", Single("h")},
}

var (
	cyrillicLatin  = NewTable("Cyrillic → Latin", cyrillicLatinRows)
	cyrillicArabic = NewTable("Cyrillic → Arabic", cyrillicArabicRows)
	arabicLatin    = NewTable("Arabic → Latin", arabicLatinRows)

	latinCyrillic  = cyrillicLatin.Invert("Latin → Cyrillic")
	arabicCyrillic = cyrillicArabic.Invert("Arabic → Cyrillic")
	latinArabic    = arabicLatin.Invert("Latin → Arabic")
)
