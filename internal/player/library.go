package player

import "sort"

// DemoLibrary returns a small alphabetically sorted library for the
// simulator. Titles are the sort key the jump-to-letter index works over.
func DemoLibrary() []Track {
	tracks := []Track{
		{Title: "Atomic Dog", Artist: "George Clinton", Album: "Computer Games", Duration: 285},
		{Title: "Africa", Artist: "Toto", Album: "Toto IV", Duration: 295},
		{Title: "Blue Monday", Artist: "New Order", Album: "Power, Corruption & Lies", Duration: 447},
		{Title: "Born Slippy", Artist: "Underworld", Album: "Trainspotting", Duration: 566},
		{Title: "Breathe", Artist: "The Prodigy", Album: "The Fat of the Land", Duration: 338},
		{Title: "Close to Me", Artist: "The Cure", Album: "The Head on the Door", Duration: 223},
		{Title: "Digital Love", Artist: "Daft Punk", Album: "Discovery", Duration: 301},
		{Title: "Enjoy the Silence", Artist: "Depeche Mode", Album: "Violator", Duration: 255},
		{Title: "Fools Gold", Artist: "The Stone Roses", Album: "The Stone Roses", Duration: 593},
		{Title: "Golden Brown", Artist: "The Stranglers", Album: "La Folie", Duration: 210},
		{Title: "Heart of Glass", Artist: "Blondie", Album: "Parallel Lines", Duration: 274},
		{Title: "Hyperballad", Artist: "Björk", Album: "Post", Duration: 321},
		{Title: "Into the Groove", Artist: "Madonna", Album: "Like a Virgin", Duration: 284},
		{Title: "Just Can't Get Enough", Artist: "Depeche Mode", Album: "Speak & Spell", Duration: 221},
		{Title: "Kids", Artist: "MGMT", Album: "Oracular Spectacular", Duration: 302},
		{Title: "Love Will Tear Us Apart", Artist: "Joy Division", Album: "Substance", Duration: 205},
		{Title: "Midnight City", Artist: "M83", Album: "Hurry Up, We're Dreaming", Duration: 244},
		{Title: "Nightswimming", Artist: "R.E.M.", Album: "Automatic for the People", Duration: 258},
		{Title: "Once in a Lifetime", Artist: "Talking Heads", Album: "Remain in Light", Duration: 260},
		{Title: "Personal Jesus", Artist: "Depeche Mode", Album: "Violator", Duration: 226},
		{Title: "Road to Nowhere", Artist: "Talking Heads", Album: "Little Creatures", Duration: 259},
		{Title: "Running Up That Hill", Artist: "Kate Bush", Album: "Hounds of Love", Duration: 300},
		{Title: "Smalltown Boy", Artist: "Bronski Beat", Album: "The Age of Consent", Duration: 304},
		{Title: "Take On Me", Artist: "a-ha", Album: "Hunting High and Low", Duration: 225},
		{Title: "This Charming Man", Artist: "The Smiths", Album: "The Smiths", Duration: 163},
		{Title: "Voyage Voyage", Artist: "Desireless", Album: "François", Duration: 251},
		{Title: "West End Girls", Artist: "Pet Shop Boys", Album: "Please", Duration: 285},
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].Title < tracks[j].Title })
	return tracks
}
