package level

import "github.com/lixenwraith/regroup/constant"

// ID identifies a level, 1-based
type ID int

const (
	Counting   ID = 1
	NumberLine ID = 2
	PlaceValue ID = 3
	Regroup    ID = 4
	ThreeDigit ID = 5
)

// Valid reports whether id names a known level
func (id ID) Valid() bool {
	return id >= constant.LevelFirst && id <= constant.LevelLast
}

// Info describes a level for the tab bar and help line
type Info struct {
	ID   ID
	Name string
	Help string
}

var catalog = []Info{
	{ID: Counting, Name: "Visual Counting",
		Help: "Add cookies, then eat any cookie to remove it. Watch the count change!"},
	{ID: NumberLine, Name: "Number Line",
		Help: "Move the frog forward or backward. Subtraction means moving backward!"},
	{ID: PlaceValue, Name: "Place Value",
		Help: "Add tens and ones separately. Tens are worth 10, ones are worth 1."},
	{ID: Regroup, Name: "Regrouping",
		Help: "Not enough ones? Break a ten into 10 ones (needs room for 10). 3 tens 2 ones becomes 2 tens 12 ones: still 32!"},
	{ID: ThreeDigit, Name: "Three Digits",
		Help: "Break hundreds into tens and tens into ones. The place below needs room for 10. Try making 456 and practice regrouping."},
}

// Catalog returns the levels in display order
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the info for id, falling back to the first level
func Lookup(id ID) Info {
	if !id.Valid() {
		return catalog[0]
	}
	return catalog[id-1]
}
