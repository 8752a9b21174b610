package ratings

// fallbackProfessors is the small built-in dataset used when reference data
// cannot be loaded. It keeps rating features usable offline.
var fallbackProfessors = []Professor{
	{LegacyID: 1001, FirstName: "Jane", LastName: "Smith", AvgRating: 4.2, AvgDifficulty: 2.8, WouldTakeAgainPercent: 88},
	{LegacyID: 1002, FirstName: "Robert", LastName: "Chen", AvgRating: 3.6, AvgDifficulty: 3.4, WouldTakeAgainPercent: 71},
	{LegacyID: 1003, FirstName: "María", LastName: "González", AvgRating: 4.7, AvgDifficulty: 2.1, WouldTakeAgainPercent: 95},
	{LegacyID: 1004, FirstName: "David", LastName: "Okafor", AvgRating: 2.9, AvgDifficulty: 4.1, WouldTakeAgainPercent: 52},
}

var fallbackMappings = map[string]int{
	"Smith, Jane":  1001,
	"Chen, Robert": 1002,
}

// Fallback returns an Index over the built-in dataset.
func Fallback() *Index {
	return NewIndex(fallbackProfessors, fallbackMappings)
}
