package geometry

// Flat fork extruded along Z: handle, neck and four tines.
var forkVertices = [...][3]float32{
	{-1, -10, 1}, {1, -10, 1}, {1, -1, 1},
	{-1, -1, 1}, {-1, -10, -1}, {1, -10, -1},
	{1, -1, -1}, {-1, -1, -1}, {-1, -1, 1},
	{1, -1, 1}, {2.5, 1.5, 1}, {-2.5, 1.5, 1},
	{-1, -1, -1}, {1, -1, -1}, {2.5, 1.5, -1},
	{-2.5, 1.5, -1}, {-2.4, 1.5, 1}, {-1.6, 1.5, 1},
	{-1.7, 6, 1}, {-2.3, 6, 1}, {-2.4, 1.5, -1},
	{-1.6, 1.5, -1}, {-1.7, 6, -1}, {-2.3, 6, -1},
	{-1.07, 1.5, 1}, {-0.27, 1.5, 1}, {-0.37, 6, 1},
	{-0.97, 6, 1}, {-1.07, 1.5, -1}, {-0.27, 1.5, -1},
	{-0.37, 6, -1}, {-0.97, 6, -1}, {0.27, 1.5, 1},
	{1.07, 1.5, 1}, {0.97, 6, 1}, {0.37, 6, 1},
	{0.27, 1.5, -1}, {1.07, 1.5, -1}, {0.97, 6, -1},
	{0.37, 6, -1}, {1.6, 1.5, 1}, {2.4, 1.5, 1},
	{2.3, 6, 1}, {1.7, 6, 1}, {1.6, 1.5, -1},
	{2.4, 1.5, -1}, {2.3, 6, -1}, {1.7, 6, -1},
}

var forkNormals = [...][3]float32{
	{0, 0, 1}, {0, 0, -1}, {0, -1, 0},
	{1, 0, 0}, {0, 1, 0}, {-1, 0, 0},
	{0.857493, -0.514496, 0}, {-0.857493, -0.514496, 0}, {0.999753, 0.0222167, 0},
	{-0.999753, 0.0222167, 0},
}

var forkElements = [...]uint32{
	0, 1, 2, 4, 6, 5, 0, 2, 3, 4, 7, 6,
	0, 4, 5, 0, 5, 1, 1, 5, 6, 1, 6, 2,
	2, 6, 7, 2, 7, 3, 3, 7, 4, 3, 4, 0,
	8, 9, 10, 12, 14, 13, 8, 10, 11, 12, 15, 14,
	8, 12, 13, 8, 13, 9, 9, 13, 14, 9, 14, 10,
	10, 14, 15, 10, 15, 11, 11, 15, 12, 11, 12, 8,
	16, 17, 18, 20, 22, 21, 16, 18, 19, 20, 23, 22,
	16, 20, 21, 16, 21, 17, 17, 21, 22, 17, 22, 18,
	18, 22, 23, 18, 23, 19, 19, 23, 20, 19, 20, 16,
	24, 25, 26, 28, 30, 29, 24, 26, 27, 28, 31, 30,
	24, 28, 29, 24, 29, 25, 25, 29, 30, 25, 30, 26,
	26, 30, 31, 26, 31, 27, 27, 31, 28, 27, 28, 24,
	32, 33, 34, 36, 38, 37, 32, 34, 35, 36, 39, 38,
	32, 36, 37, 32, 37, 33, 33, 37, 38, 33, 38, 34,
	34, 38, 39, 34, 39, 35, 35, 39, 36, 35, 36, 32,
	40, 41, 42, 44, 46, 45, 40, 42, 43, 44, 47, 46,
	40, 44, 45, 40, 45, 41, 41, 45, 46, 41, 46, 42,
	42, 46, 47, 42, 47, 43, 43, 47, 44, 43, 44, 40,
}

var forkNormalIndices = [...]uint32{
	0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5,
	0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 6, 6, 6, 6, 6, 6,
	4, 4, 4, 4, 4, 4, 7, 7, 7, 7, 7, 7,
	0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 8, 8, 8, 8, 8, 8,
	4, 4, 4, 4, 4, 4, 9, 9, 9, 9, 9, 9,
	0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 8, 8, 8, 8, 8, 8,
	4, 4, 4, 4, 4, 4, 9, 9, 9, 9, 9, 9,
	0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 8, 8, 8, 8, 8, 8,
	4, 4, 4, 4, 4, 4, 9, 9, 9, 9, 9, 9,
	0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 8, 8, 8, 8, 8, 8,
	4, 4, 4, 4, 4, 4, 9, 9, 9, 9, 9, 9,
}
