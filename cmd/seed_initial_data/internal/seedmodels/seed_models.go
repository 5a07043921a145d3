package seedmodels

// SeedWord defines one vocabulary entry in the JSON seed file.
type SeedWord struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// SeedSet defines a word set and its words in the JSON seed file.
type SeedSet struct {
	Name  string     `json:"set_name"`
	Words []SeedWord `json:"words"`
}
