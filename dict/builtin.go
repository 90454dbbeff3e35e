package dict

// builtinEntries is the curated syllable table. Keys range from single
// syllables to compound clusters of 7+ code points; longer compounds shadow
// their shorter prefixes under longest-match (for example နိုင်ငံ over နိုင်).
var builtinEntries = []Entry{
	// Core name components.
	{"မောင်", Record{Primary: "Mg", Alternates: []string{"Maung", "M"}, Frequency: 0.85, Category: Honorific}},
	{"ကျော်", Record{Primary: "Kyaw", Alternates: []string{"K"}, Frequency: 0.78, Category: Name}},
	{"စန်း", Record{Primary: "San", Alternates: []string{"S"}, Frequency: 0.72, Category: Name}},
	{"ဝင်း", Record{Primary: "Win", Alternates: []string{"W"}, Frequency: 0.68, Category: Name}},
	{"ထွန်း", Record{Primary: "Htun", Alternates: []string{"T"}, Frequency: 0.65, Category: Name}},

	// Extended mappings.
	{"ဇော်", Record{Primary: "Zaw", Alternates: []string{"Z"}, Frequency: 0.62, Category: Name}},
	{"အောင်", Record{Primary: "Aung", Alternates: []string{"A"}, Frequency: 0.79, Category: Name}},
	{"သန်း", Record{Primary: "Than", Alternates: []string{"Th"}, Frequency: 0.55, Category: Name}},
	{"မင်း", Record{Primary: "Min", Alternates: []string{"M"}, Frequency: 0.58, Category: Name}},
	{"ဦး", Record{Primary: "U", Alternates: nil, Frequency: 0.91, Category: Honorific}},

	// Compound syllables.
	{"နိုင်", Record{Primary: "Naing", Alternates: []string{"Nine"}, Frequency: 0.45, Category: Name}},
	{"မြင့်", Record{Primary: "Myint", Alternates: []string{"My"}, Frequency: 0.52, Category: Name}},
	{"ချစ်", Record{Primary: "Chit", Alternates: []string{"Ch"}, Frequency: 0.48, Category: Name}},

	// Political and contextual terms.
	{"နိုင်ငံ", Record{Primary: "Nation", Alternates: []string{"Gov"}, Frequency: 0.32, Category: Political}},
	{"ပြည်သူ", Record{Primary: "People", Alternates: []string{"Citizen"}, Frequency: 0.35, Category: Political}},
	{"အကြမ်းဖက်", Record{Primary: "Terrorist", Alternates: []string{"PDF"}, Frequency: 0.28, Category: Political}},
}

var builtin = MustNew(builtinEntries)

// Builtin returns the builtin syllable dictionary. The dictionary is shared;
// it is immutable, so sharing is safe.
func Builtin() *Dictionary { return builtin }
