package geometry

// Cube of half-extent 0.5 centered at the origin, each face a 4x4 grid
// with its own vertices.
var cubeVertices = [...][3]float32{
	{0.5, -0.5, -0.5}, {0.5, -0.5, -0.25}, {0.5, -0.5, 0},
	{0.5, -0.5, 0.25}, {0.5, -0.5, 0.5}, {0.5, -0.25, -0.5},
	{0.5, -0.25, -0.25}, {0.5, -0.25, 0}, {0.5, -0.25, 0.25},
	{0.5, -0.25, 0.5}, {0.5, 0, -0.5}, {0.5, 0, -0.25},
	{0.5, 0, 0}, {0.5, 0, 0.25}, {0.5, 0, 0.5},
	{0.5, 0.25, -0.5}, {0.5, 0.25, -0.25}, {0.5, 0.25, 0},
	{0.5, 0.25, 0.25}, {0.5, 0.25, 0.5}, {0.5, 0.5, -0.5},
	{0.5, 0.5, -0.25}, {0.5, 0.5, 0}, {0.5, 0.5, 0.25},
	{0.5, 0.5, 0.5}, {-0.5, -0.5, -0.5}, {-0.5, -0.5, -0.25},
	{-0.5, -0.5, 0}, {-0.5, -0.5, 0.25}, {-0.5, -0.5, 0.5},
	{-0.5, -0.25, -0.5}, {-0.5, -0.25, -0.25}, {-0.5, -0.25, 0},
	{-0.5, -0.25, 0.25}, {-0.5, -0.25, 0.5}, {-0.5, 0, -0.5},
	{-0.5, 0, -0.25}, {-0.5, 0, 0}, {-0.5, 0, 0.25},
	{-0.5, 0, 0.5}, {-0.5, 0.25, -0.5}, {-0.5, 0.25, -0.25},
	{-0.5, 0.25, 0}, {-0.5, 0.25, 0.25}, {-0.5, 0.25, 0.5},
	{-0.5, 0.5, -0.5}, {-0.5, 0.5, -0.25}, {-0.5, 0.5, 0},
	{-0.5, 0.5, 0.25}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5},
	{-0.25, 0.5, -0.5}, {0, 0.5, -0.5}, {0.25, 0.5, -0.5},
	{0.5, 0.5, -0.5}, {-0.5, 0.5, -0.25}, {-0.25, 0.5, -0.25},
	{0, 0.5, -0.25}, {0.25, 0.5, -0.25}, {0.5, 0.5, -0.25},
	{-0.5, 0.5, 0}, {-0.25, 0.5, 0}, {0, 0.5, 0},
	{0.25, 0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0.25},
	{-0.25, 0.5, 0.25}, {0, 0.5, 0.25}, {0.25, 0.5, 0.25},
	{0.5, 0.5, 0.25}, {-0.5, 0.5, 0.5}, {-0.25, 0.5, 0.5},
	{0, 0.5, 0.5}, {0.25, 0.5, 0.5}, {0.5, 0.5, 0.5},
	{-0.5, -0.5, -0.5}, {-0.25, -0.5, -0.5}, {0, -0.5, -0.5},
	{0.25, -0.5, -0.5}, {0.5, -0.5, -0.5}, {-0.5, -0.5, -0.25},
	{-0.25, -0.5, -0.25}, {0, -0.5, -0.25}, {0.25, -0.5, -0.25},
	{0.5, -0.5, -0.25}, {-0.5, -0.5, 0}, {-0.25, -0.5, 0},
	{0, -0.5, 0}, {0.25, -0.5, 0}, {0.5, -0.5, 0},
	{-0.5, -0.5, 0.25}, {-0.25, -0.5, 0.25}, {0, -0.5, 0.25},
	{0.25, -0.5, 0.25}, {0.5, -0.5, 0.25}, {-0.5, -0.5, 0.5},
	{-0.25, -0.5, 0.5}, {0, -0.5, 0.5}, {0.25, -0.5, 0.5},
	{0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}, {-0.25, -0.5, 0.5},
	{0, -0.5, 0.5}, {0.25, -0.5, 0.5}, {0.5, -0.5, 0.5},
	{-0.5, -0.25, 0.5}, {-0.25, -0.25, 0.5}, {0, -0.25, 0.5},
	{0.25, -0.25, 0.5}, {0.5, -0.25, 0.5}, {-0.5, 0, 0.5},
	{-0.25, 0, 0.5}, {0, 0, 0.5}, {0.25, 0, 0.5},
	{0.5, 0, 0.5}, {-0.5, 0.25, 0.5}, {-0.25, 0.25, 0.5},
	{0, 0.25, 0.5}, {0.25, 0.25, 0.5}, {0.5, 0.25, 0.5},
	{-0.5, 0.5, 0.5}, {-0.25, 0.5, 0.5}, {0, 0.5, 0.5},
	{0.25, 0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, -0.5, -0.5},
	{-0.25, -0.5, -0.5}, {0, -0.5, -0.5}, {0.25, -0.5, -0.5},
	{0.5, -0.5, -0.5}, {-0.5, -0.25, -0.5}, {-0.25, -0.25, -0.5},
	{0, -0.25, -0.5}, {0.25, -0.25, -0.5}, {0.5, -0.25, -0.5},
	{-0.5, 0, -0.5}, {-0.25, 0, -0.5}, {0, 0, -0.5},
	{0.25, 0, -0.5}, {0.5, 0, -0.5}, {-0.5, 0.25, -0.5},
	{-0.25, 0.25, -0.5}, {0, 0.25, -0.5}, {0.25, 0.25, -0.5},
	{0.5, 0.25, -0.5}, {-0.5, 0.5, -0.5}, {-0.25, 0.5, -0.5},
	{0, 0.5, -0.5}, {0.25, 0.5, -0.5}, {0.5, 0.5, -0.5},
}

var cubeElements = [...]uint32{
	0, 6, 1, 0, 5, 6, 1, 7, 2, 1, 6, 7,
	2, 8, 3, 2, 7, 8, 3, 9, 4, 3, 8, 9,
	5, 11, 6, 5, 10, 11, 6, 12, 7, 6, 11, 12,
	7, 13, 8, 7, 12, 13, 8, 14, 9, 8, 13, 14,
	10, 16, 11, 10, 15, 16, 11, 17, 12, 11, 16, 17,
	12, 18, 13, 12, 17, 18, 13, 19, 14, 13, 18, 19,
	15, 21, 16, 15, 20, 21, 16, 22, 17, 16, 21, 22,
	17, 23, 18, 17, 22, 23, 18, 24, 19, 18, 23, 24,
	25, 26, 31, 25, 31, 30, 26, 27, 32, 26, 32, 31,
	27, 28, 33, 27, 33, 32, 28, 29, 34, 28, 34, 33,
	30, 31, 36, 30, 36, 35, 31, 32, 37, 31, 37, 36,
	32, 33, 38, 32, 38, 37, 33, 34, 39, 33, 39, 38,
	35, 36, 41, 35, 41, 40, 36, 37, 42, 36, 42, 41,
	37, 38, 43, 37, 43, 42, 38, 39, 44, 38, 44, 43,
	40, 41, 46, 40, 46, 45, 41, 42, 47, 41, 47, 46,
	42, 43, 48, 42, 48, 47, 43, 44, 49, 43, 49, 48,
	50, 56, 51, 50, 55, 56, 51, 57, 52, 51, 56, 57,
	52, 58, 53, 52, 57, 58, 53, 59, 54, 53, 58, 59,
	55, 61, 56, 55, 60, 61, 56, 62, 57, 56, 61, 62,
	57, 63, 58, 57, 62, 63, 58, 64, 59, 58, 63, 64,
	60, 66, 61, 60, 65, 66, 61, 67, 62, 61, 66, 67,
	62, 68, 63, 62, 67, 68, 63, 69, 64, 63, 68, 69,
	65, 71, 66, 65, 70, 71, 66, 72, 67, 66, 71, 72,
	67, 73, 68, 67, 72, 73, 68, 74, 69, 68, 73, 74,
	75, 76, 81, 75, 81, 80, 76, 77, 82, 76, 82, 81,
	77, 78, 83, 77, 83, 82, 78, 79, 84, 78, 84, 83,
	80, 81, 86, 80, 86, 85, 81, 82, 87, 81, 87, 86,
	82, 83, 88, 82, 88, 87, 83, 84, 89, 83, 89, 88,
	85, 86, 91, 85, 91, 90, 86, 87, 92, 86, 92, 91,
	87, 88, 93, 87, 93, 92, 88, 89, 94, 88, 94, 93,
	90, 91, 96, 90, 96, 95, 91, 92, 97, 91, 97, 96,
	92, 93, 98, 92, 98, 97, 93, 94, 99, 93, 99, 98,
	100, 101, 106, 100, 106, 105, 101, 102, 107, 101, 107, 106,
	102, 103, 108, 102, 108, 107, 103, 104, 109, 103, 109, 108,
	105, 106, 111, 105, 111, 110, 106, 107, 112, 106, 112, 111,
	107, 108, 113, 107, 113, 112, 108, 109, 114, 108, 114, 113,
	110, 111, 116, 110, 116, 115, 111, 112, 117, 111, 117, 116,
	112, 113, 118, 112, 118, 117, 113, 114, 119, 113, 119, 118,
	115, 116, 121, 115, 121, 120, 116, 117, 122, 116, 122, 121,
	117, 118, 123, 117, 123, 122, 118, 119, 124, 118, 124, 123,
	125, 131, 126, 125, 130, 131, 126, 132, 127, 126, 131, 132,
	127, 133, 128, 127, 132, 133, 128, 134, 129, 128, 133, 134,
	130, 136, 131, 130, 135, 136, 131, 137, 132, 131, 136, 137,
	132, 138, 133, 132, 137, 138, 133, 139, 134, 133, 138, 139,
	135, 141, 136, 135, 140, 141, 136, 142, 137, 136, 141, 142,
	137, 143, 138, 137, 142, 143, 138, 144, 139, 138, 143, 144,
	140, 146, 141, 140, 145, 146, 141, 147, 142, 141, 146, 147,
	142, 148, 143, 142, 147, 148, 143, 149, 144, 143, 148, 149,
}

var (
	cubeRightFace  = Range{First: 0, Last: 95}
	cubeLeftFace   = Range{First: 96, Last: 191}
	cubeTopFace    = Range{First: 192, Last: 287}
	cubeBottomFace = Range{First: 288, Last: 383}
	cubeFrontFace  = Range{First: 384, Last: 479}
	cubeBackFace   = Range{First: 480, Last: 575}
)
