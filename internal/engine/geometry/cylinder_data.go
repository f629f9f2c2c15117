package geometry

// Unit cylinder: radius 0.5, y in [-0.5, 0.5], 50 slices.
// Vertex 0 is the bottom center, 1 the top center, then the bottom
// ring and the top ring.
var cylinderVertices = [...][3]float32{
	{0, -0.5, 0}, {0, 0.5, 0}, {0, -0.5, 0.5},
	{0.0626666, -0.5, 0.496057}, {0.124345, -0.5, 0.484292}, {0.184062, -0.5, 0.464888},
	{0.240877, -0.5, 0.438153}, {0.293893, -0.5, 0.404508}, {0.342274, -0.5, 0.364484},
	{0.385257, -0.5, 0.318712}, {0.422164, -0.5, 0.267913}, {0.452414, -0.5, 0.21289},
	{0.475528, -0.5, 0.154508}, {0.491144, -0.5, 0.0936907}, {0.499013, -0.5, 0.0313953},
	{0.499013, -0.5, -0.0313953}, {0.491144, -0.5, -0.0936907}, {0.475528, -0.5, -0.154508},
	{0.452414, -0.5, -0.21289}, {0.422164, -0.5, -0.267913}, {0.385257, -0.5, -0.318712},
	{0.342274, -0.5, -0.364484}, {0.293893, -0.5, -0.404508}, {0.240877, -0.5, -0.438153},
	{0.184062, -0.5, -0.464888}, {0.124345, -0.5, -0.484292}, {0.0626666, -0.5, -0.496057},
	{0, -0.5, -0.5}, {-0.0626666, -0.5, -0.496057}, {-0.124345, -0.5, -0.484292},
	{-0.184062, -0.5, -0.464888}, {-0.240877, -0.5, -0.438153}, {-0.293893, -0.5, -0.404508},
	{-0.342274, -0.5, -0.364484}, {-0.385257, -0.5, -0.318712}, {-0.422164, -0.5, -0.267913},
	{-0.452414, -0.5, -0.21289}, {-0.475528, -0.5, -0.154508}, {-0.491144, -0.5, -0.0936907},
	{-0.499013, -0.5, -0.0313953}, {-0.499013, -0.5, 0.0313953}, {-0.491144, -0.5, 0.0936907},
	{-0.475528, -0.5, 0.154508}, {-0.452414, -0.5, 0.21289}, {-0.422164, -0.5, 0.267913},
	{-0.385257, -0.5, 0.318712}, {-0.342274, -0.5, 0.364484}, {-0.293893, -0.5, 0.404508},
	{-0.240877, -0.5, 0.438153}, {-0.184062, -0.5, 0.464888}, {-0.124345, -0.5, 0.484292},
	{-0.0626666, -0.5, 0.496057}, {0, 0.5, 0.5}, {0.0626666, 0.5, 0.496057},
	{0.124345, 0.5, 0.484292}, {0.184062, 0.5, 0.464888}, {0.240877, 0.5, 0.438153},
	{0.293893, 0.5, 0.404508}, {0.342274, 0.5, 0.364484}, {0.385257, 0.5, 0.318712},
	{0.422164, 0.5, 0.267913}, {0.452414, 0.5, 0.21289}, {0.475528, 0.5, 0.154508},
	{0.491144, 0.5, 0.0936907}, {0.499013, 0.5, 0.0313953}, {0.499013, 0.5, -0.0313953},
	{0.491144, 0.5, -0.0936907}, {0.475528, 0.5, -0.154508}, {0.452414, 0.5, -0.21289},
	{0.422164, 0.5, -0.267913}, {0.385257, 0.5, -0.318712}, {0.342274, 0.5, -0.364484},
	{0.293893, 0.5, -0.404508}, {0.240877, 0.5, -0.438153}, {0.184062, 0.5, -0.464888},
	{0.124345, 0.5, -0.484292}, {0.0626666, 0.5, -0.496057}, {0, 0.5, -0.5},
	{-0.0626666, 0.5, -0.496057}, {-0.124345, 0.5, -0.484292}, {-0.184062, 0.5, -0.464888},
	{-0.240877, 0.5, -0.438153}, {-0.293893, 0.5, -0.404508}, {-0.342274, 0.5, -0.364484},
	{-0.385257, 0.5, -0.318712}, {-0.422164, 0.5, -0.267913}, {-0.452414, 0.5, -0.21289},
	{-0.475528, 0.5, -0.154508}, {-0.491144, 0.5, -0.0936907}, {-0.499013, 0.5, -0.0313953},
	{-0.499013, 0.5, 0.0313953}, {-0.491144, 0.5, 0.0936907}, {-0.475528, 0.5, 0.154508},
	{-0.452414, 0.5, 0.21289}, {-0.422164, 0.5, 0.267913}, {-0.385257, 0.5, 0.318712},
	{-0.342274, 0.5, 0.364484}, {-0.293893, 0.5, 0.404508}, {-0.240877, 0.5, 0.438153},
	{-0.184062, 0.5, 0.464888}, {-0.124345, 0.5, 0.484292}, {-0.0626666, 0.5, 0.496057},
}

var cylinderElements = [...]uint32{
	0, 3, 2, 0, 4, 3, 0, 5, 4, 0, 6, 5,
	0, 7, 6, 0, 8, 7, 0, 9, 8, 0, 10, 9,
	0, 11, 10, 0, 12, 11, 0, 13, 12, 0, 14, 13,
	0, 15, 14, 0, 16, 15, 0, 17, 16, 0, 18, 17,
	0, 19, 18, 0, 20, 19, 0, 21, 20, 0, 22, 21,
	0, 23, 22, 0, 24, 23, 0, 25, 24, 0, 26, 25,
	0, 27, 26, 0, 28, 27, 0, 29, 28, 0, 30, 29,
	0, 31, 30, 0, 32, 31, 0, 33, 32, 0, 34, 33,
	0, 35, 34, 0, 36, 35, 0, 37, 36, 0, 38, 37,
	0, 39, 38, 0, 40, 39, 0, 41, 40, 0, 42, 41,
	0, 43, 42, 0, 44, 43, 0, 45, 44, 0, 46, 45,
	0, 47, 46, 0, 48, 47, 0, 49, 48, 0, 50, 49,
	0, 51, 50, 0, 2, 51, 1, 52, 53, 1, 53, 54,
	1, 54, 55, 1, 55, 56, 1, 56, 57, 1, 57, 58,
	1, 58, 59, 1, 59, 60, 1, 60, 61, 1, 61, 62,
	1, 62, 63, 1, 63, 64, 1, 64, 65, 1, 65, 66,
	1, 66, 67, 1, 67, 68, 1, 68, 69, 1, 69, 70,
	1, 70, 71, 1, 71, 72, 1, 72, 73, 1, 73, 74,
	1, 74, 75, 1, 75, 76, 1, 76, 77, 1, 77, 78,
	1, 78, 79, 1, 79, 80, 1, 80, 81, 1, 81, 82,
	1, 82, 83, 1, 83, 84, 1, 84, 85, 1, 85, 86,
	1, 86, 87, 1, 87, 88, 1, 88, 89, 1, 89, 90,
	1, 90, 91, 1, 91, 92, 1, 92, 93, 1, 93, 94,
	1, 94, 95, 1, 95, 96, 1, 96, 97, 1, 97, 98,
	1, 98, 99, 1, 99, 100, 1, 100, 101, 1, 101, 52,
	2, 3, 52, 52, 3, 53, 3, 4, 53, 53, 4, 54,
	4, 5, 54, 54, 5, 55, 5, 6, 55, 55, 6, 56,
	6, 7, 56, 56, 7, 57, 7, 8, 57, 57, 8, 58,
	8, 9, 58, 58, 9, 59, 9, 10, 59, 59, 10, 60,
	10, 11, 60, 60, 11, 61, 11, 12, 61, 61, 12, 62,
	12, 13, 62, 62, 13, 63, 13, 14, 63, 63, 14, 64,
	14, 15, 64, 64, 15, 65, 15, 16, 65, 65, 16, 66,
	16, 17, 66, 66, 17, 67, 17, 18, 67, 67, 18, 68,
	18, 19, 68, 68, 19, 69, 19, 20, 69, 69, 20, 70,
	20, 21, 70, 70, 21, 71, 21, 22, 71, 71, 22, 72,
	22, 23, 72, 72, 23, 73, 23, 24, 73, 73, 24, 74,
	24, 25, 74, 74, 25, 75, 25, 26, 75, 75, 26, 76,
	26, 27, 76, 76, 27, 77, 27, 28, 77, 77, 28, 78,
	28, 29, 78, 78, 29, 79, 29, 30, 79, 79, 30, 80,
	30, 31, 80, 80, 31, 81, 31, 32, 81, 81, 32, 82,
	32, 33, 82, 82, 33, 83, 33, 34, 83, 83, 34, 84,
	34, 35, 84, 84, 35, 85, 35, 36, 85, 85, 36, 86,
	36, 37, 86, 86, 37, 87, 37, 38, 87, 87, 38, 88,
	38, 39, 88, 88, 39, 89, 39, 40, 89, 89, 40, 90,
	40, 41, 90, 90, 41, 91, 41, 42, 91, 91, 42, 92,
	42, 43, 92, 92, 43, 93, 43, 44, 93, 93, 44, 94,
	44, 45, 94, 94, 45, 95, 45, 46, 95, 95, 46, 96,
	46, 47, 96, 96, 47, 97, 47, 48, 97, 97, 48, 98,
	48, 49, 98, 98, 49, 99, 49, 50, 99, 99, 50, 100,
	50, 51, 100, 100, 51, 101, 51, 2, 101, 101, 2, 52,
}

var (
	cylinderBottomDisc = Range{First: 0, Last: 149}
	cylinderTopDisc    = Range{First: 150, Last: 299}
	cylinderBody       = Range{First: 300, Last: 599}
)
