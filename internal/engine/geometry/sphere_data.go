package geometry

// Sphere of radius 0.5 centered at the origin: 20 slices, 15 stacks.
var sphereVertices = [...][3]float32{
	{0, 0.5, 0}, {0, 0.489074, 0.103956}, {0.0321241, 0.489074, 0.0988679},
	{0.0611037, 0.489074, 0.084102}, {0.084102, 0.489074, 0.0611037}, {0.0988679, 0.489074, 0.0321241},
	{0.103956, 0.489074, 0}, {0.0988679, 0.489074, -0.0321241}, {0.084102, 0.489074, -0.0611037},
	{0.0611037, 0.489074, -0.084102}, {0.0321241, 0.489074, -0.0988679}, {0, 0.489074, -0.103956},
	{-0.0321241, 0.489074, -0.0988679}, {-0.0611037, 0.489074, -0.084102}, {-0.084102, 0.489074, -0.0611037},
	{-0.0988679, 0.489074, -0.0321241}, {-0.103956, 0.489074, 0}, {-0.0988679, 0.489074, 0.0321241},
	{-0.084102, 0.489074, 0.0611037}, {-0.0611037, 0.489074, 0.084102}, {-0.0321241, 0.489074, 0.0988679},
	{0, 0.456773, 0.203368}, {0.0628443, 0.456773, 0.193415}, {0.119537, 0.456773, 0.164528},
	{0.164528, 0.456773, 0.119537}, {0.193415, 0.456773, 0.0628443}, {0.203368, 0.456773, 0},
	{0.193415, 0.456773, -0.0628443}, {0.164528, 0.456773, -0.119537}, {0.119537, 0.456773, -0.164528},
	{0.0628443, 0.456773, -0.193415}, {0, 0.456773, -0.203368}, {-0.0628443, 0.456773, -0.193415},
	{-0.119537, 0.456773, -0.164528}, {-0.164528, 0.456773, -0.119537}, {-0.193415, 0.456773, -0.0628443},
	{-0.203368, 0.456773, 0}, {-0.193415, 0.456773, 0.0628443}, {-0.164528, 0.456773, 0.119537},
	{-0.119537, 0.456773, 0.164528}, {-0.0628443, 0.456773, 0.193415}, {0, 0.404508, 0.293893},
	{0.0908178, 0.404508, 0.279508}, {0.172746, 0.404508, 0.237764}, {0.237764, 0.404508, 0.172746},
	{0.279508, 0.404508, 0.0908178}, {0.293893, 0.404508, 0}, {0.279508, 0.404508, -0.0908178},
	{0.237764, 0.404508, -0.172746}, {0.172746, 0.404508, -0.237764}, {0.0908178, 0.404508, -0.279508},
	{0, 0.404508, -0.293893}, {-0.0908178, 0.404508, -0.279508}, {-0.172746, 0.404508, -0.237764},
	{-0.237764, 0.404508, -0.172746}, {-0.279508, 0.404508, -0.0908178}, {-0.293893, 0.404508, 0},
	{-0.279508, 0.404508, 0.0908178}, {-0.237764, 0.404508, 0.172746}, {-0.172746, 0.404508, 0.237764},
	{-0.0908178, 0.404508, 0.279508}, {0, 0.334565, 0.371572}, {0.114822, 0.334565, 0.353386},
	{0.218405, 0.334565, 0.300608}, {0.300608, 0.334565, 0.218405}, {0.353386, 0.334565, 0.114822},
	{0.371572, 0.334565, 0}, {0.353386, 0.334565, -0.114822}, {0.300608, 0.334565, -0.218405},
	{0.218405, 0.334565, -0.300608}, {0.114822, 0.334565, -0.353386}, {0, 0.334565, -0.371572},
	{-0.114822, 0.334565, -0.353386}, {-0.218405, 0.334565, -0.300608}, {-0.300608, 0.334565, -0.218405},
	{-0.353386, 0.334565, -0.114822}, {-0.371572, 0.334565, 0}, {-0.353386, 0.334565, 0.114822},
	{-0.300608, 0.334565, 0.218405}, {-0.218405, 0.334565, 0.300608}, {-0.114822, 0.334565, 0.353386},
	{0, 0.25, 0.433013}, {0.133808, 0.25, 0.41182}, {0.254518, 0.25, 0.350315},
	{0.350315, 0.25, 0.254518}, {0.41182, 0.25, 0.133808}, {0.433013, 0.25, 0},
	{0.41182, 0.25, -0.133808}, {0.350315, 0.25, -0.254518}, {0.254518, 0.25, -0.350315},
	{0.133808, 0.25, -0.41182}, {0, 0.25, -0.433013}, {-0.133808, 0.25, -0.41182},
	{-0.254518, 0.25, -0.350315}, {-0.350315, 0.25, -0.254518}, {-0.41182, 0.25, -0.133808},
	{-0.433013, 0.25, 0}, {-0.41182, 0.25, 0.133808}, {-0.350315, 0.25, 0.254518},
	{-0.254518, 0.25, 0.350315}, {-0.133808, 0.25, 0.41182}, {0, 0.154508, 0.475528},
	{0.146946, 0.154508, 0.452254}, {0.279508, 0.154508, 0.38471}, {0.38471, 0.154508, 0.279508},
	{0.452254, 0.154508, 0.146946}, {0.475528, 0.154508, 0}, {0.452254, 0.154508, -0.146946},
	{0.38471, 0.154508, -0.279508}, {0.279508, 0.154508, -0.38471}, {0.146946, 0.154508, -0.452254},
	{0, 0.154508, -0.475528}, {-0.146946, 0.154508, -0.452254}, {-0.279508, 0.154508, -0.38471},
	{-0.38471, 0.154508, -0.279508}, {-0.452254, 0.154508, -0.146946}, {-0.475528, 0.154508, 0},
	{-0.452254, 0.154508, 0.146946}, {-0.38471, 0.154508, 0.279508}, {-0.279508, 0.154508, 0.38471},
	{-0.146946, 0.154508, 0.452254}, {0, 0.0522642, 0.497261}, {0.153662, 0.0522642, 0.472923},
	{0.292283, 0.0522642, 0.402293}, {0.402293, 0.0522642, 0.292283}, {0.472923, 0.0522642, 0.153662},
	{0.497261, 0.0522642, 0}, {0.472923, 0.0522642, -0.153662}, {0.402293, 0.0522642, -0.292283},
	{0.292283, 0.0522642, -0.402293}, {0.153662, 0.0522642, -0.472923}, {0, 0.0522642, -0.497261},
	{-0.153662, 0.0522642, -0.472923}, {-0.292283, 0.0522642, -0.402293}, {-0.402293, 0.0522642, -0.292283},
	{-0.472923, 0.0522642, -0.153662}, {-0.497261, 0.0522642, 0}, {-0.472923, 0.0522642, 0.153662},
	{-0.402293, 0.0522642, 0.292283}, {-0.292283, 0.0522642, 0.402293}, {-0.153662, 0.0522642, 0.472923},
	{0, -0.0522642, 0.497261}, {0.153662, -0.0522642, 0.472923}, {0.292283, -0.0522642, 0.402293},
	{0.402293, -0.0522642, 0.292283}, {0.472923, -0.0522642, 0.153662}, {0.497261, -0.0522642, 0},
	{0.472923, -0.0522642, -0.153662}, {0.402293, -0.0522642, -0.292283}, {0.292283, -0.0522642, -0.402293},
	{0.153662, -0.0522642, -0.472923}, {0, -0.0522642, -0.497261}, {-0.153662, -0.0522642, -0.472923},
	{-0.292283, -0.0522642, -0.402293}, {-0.402293, -0.0522642, -0.292283}, {-0.472923, -0.0522642, -0.153662},
	{-0.497261, -0.0522642, 0}, {-0.472923, -0.0522642, 0.153662}, {-0.402293, -0.0522642, 0.292283},
	{-0.292283, -0.0522642, 0.402293}, {-0.153662, -0.0522642, 0.472923}, {0, -0.154508, 0.475528},
	{0.146946, -0.154508, 0.452254}, {0.279508, -0.154508, 0.38471}, {0.38471, -0.154508, 0.279508},
	{0.452254, -0.154508, 0.146946}, {0.475528, -0.154508, 0}, {0.452254, -0.154508, -0.146946},
	{0.38471, -0.154508, -0.279508}, {0.279508, -0.154508, -0.38471}, {0.146946, -0.154508, -0.452254},
	{0, -0.154508, -0.475528}, {-0.146946, -0.154508, -0.452254}, {-0.279508, -0.154508, -0.38471},
	{-0.38471, -0.154508, -0.279508}, {-0.452254, -0.154508, -0.146946}, {-0.475528, -0.154508, 0},
	{-0.452254, -0.154508, 0.146946}, {-0.38471, -0.154508, 0.279508}, {-0.279508, -0.154508, 0.38471},
	{-0.146946, -0.154508, 0.452254}, {0, -0.25, 0.433013}, {0.133808, -0.25, 0.41182},
	{0.254518, -0.25, 0.350315}, {0.350315, -0.25, 0.254518}, {0.41182, -0.25, 0.133808},
	{0.433013, -0.25, 0}, {0.41182, -0.25, -0.133808}, {0.350315, -0.25, -0.254518},
	{0.254518, -0.25, -0.350315}, {0.133808, -0.25, -0.41182}, {0, -0.25, -0.433013},
	{-0.133808, -0.25, -0.41182}, {-0.254518, -0.25, -0.350315}, {-0.350315, -0.25, -0.254518},
	{-0.41182, -0.25, -0.133808}, {-0.433013, -0.25, 0}, {-0.41182, -0.25, 0.133808},
	{-0.350315, -0.25, 0.254518}, {-0.254518, -0.25, 0.350315}, {-0.133808, -0.25, 0.41182},
	{0, -0.334565, 0.371572}, {0.114822, -0.334565, 0.353386}, {0.218405, -0.334565, 0.300608},
	{0.300608, -0.334565, 0.218405}, {0.353386, -0.334565, 0.114822}, {0.371572, -0.334565, 0},
	{0.353386, -0.334565, -0.114822}, {0.300608, -0.334565, -0.218405}, {0.218405, -0.334565, -0.300608},
	{0.114822, -0.334565, -0.353386}, {0, -0.334565, -0.371572}, {-0.114822, -0.334565, -0.353386},
	{-0.218405, -0.334565, -0.300608}, {-0.300608, -0.334565, -0.218405}, {-0.353386, -0.334565, -0.114822},
	{-0.371572, -0.334565, 0}, {-0.353386, -0.334565, 0.114822}, {-0.300608, -0.334565, 0.218405},
	{-0.218405, -0.334565, 0.300608}, {-0.114822, -0.334565, 0.353386}, {0, -0.404508, 0.293893},
	{0.0908178, -0.404508, 0.279508}, {0.172746, -0.404508, 0.237764}, {0.237764, -0.404508, 0.172746},
	{0.279508, -0.404508, 0.0908178}, {0.293893, -0.404508, 0}, {0.279508, -0.404508, -0.0908178},
	{0.237764, -0.404508, -0.172746}, {0.172746, -0.404508, -0.237764}, {0.0908178, -0.404508, -0.279508},
	{0, -0.404508, -0.293893}, {-0.0908178, -0.404508, -0.279508}, {-0.172746, -0.404508, -0.237764},
	{-0.237764, -0.404508, -0.172746}, {-0.279508, -0.404508, -0.0908178}, {-0.293893, -0.404508, 0},
	{-0.279508, -0.404508, 0.0908178}, {-0.237764, -0.404508, 0.172746}, {-0.172746, -0.404508, 0.237764},
	{-0.0908178, -0.404508, 0.279508}, {0, -0.456773, 0.203368}, {0.0628443, -0.456773, 0.193415},
	{0.119537, -0.456773, 0.164528}, {0.164528, -0.456773, 0.119537}, {0.193415, -0.456773, 0.0628443},
	{0.203368, -0.456773, 0}, {0.193415, -0.456773, -0.0628443}, {0.164528, -0.456773, -0.119537},
	{0.119537, -0.456773, -0.164528}, {0.0628443, -0.456773, -0.193415}, {0, -0.456773, -0.203368},
	{-0.0628443, -0.456773, -0.193415}, {-0.119537, -0.456773, -0.164528}, {-0.164528, -0.456773, -0.119537},
	{-0.193415, -0.456773, -0.0628443}, {-0.203368, -0.456773, 0}, {-0.193415, -0.456773, 0.0628443},
	{-0.164528, -0.456773, 0.119537}, {-0.119537, -0.456773, 0.164528}, {-0.0628443, -0.456773, 0.193415},
	{0, -0.489074, 0.103956}, {0.0321241, -0.489074, 0.0988679}, {0.0611037, -0.489074, 0.084102},
	{0.084102, -0.489074, 0.0611037}, {0.0988679, -0.489074, 0.0321241}, {0.103956, -0.489074, 0},
	{0.0988679, -0.489074, -0.0321241}, {0.084102, -0.489074, -0.0611037}, {0.0611037, -0.489074, -0.084102},
	{0.0321241, -0.489074, -0.0988679}, {0, -0.489074, -0.103956}, {-0.0321241, -0.489074, -0.0988679},
	{-0.0611037, -0.489074, -0.084102}, {-0.084102, -0.489074, -0.0611037}, {-0.0988679, -0.489074, -0.0321241},
	{-0.103956, -0.489074, 0}, {-0.0988679, -0.489074, 0.0321241}, {-0.084102, -0.489074, 0.0611037},
	{-0.0611037, -0.489074, 0.084102}, {-0.0321241, -0.489074, 0.0988679}, {0, -0.5, 0},
}

var sphereElements = [...]uint32{
	0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5,
	0, 5, 6, 0, 6, 7, 0, 7, 8, 0, 8, 9,
	0, 9, 10, 0, 10, 11, 0, 11, 12, 0, 12, 13,
	0, 13, 14, 0, 14, 15, 0, 15, 16, 0, 16, 17,
	0, 17, 18, 0, 18, 19, 0, 19, 20, 0, 20, 1,
	1, 21, 2, 2, 21, 22, 2, 22, 3, 3, 22, 23,
	3, 23, 4, 4, 23, 24, 4, 24, 5, 5, 24, 25,
	5, 25, 6, 6, 25, 26, 6, 26, 7, 7, 26, 27,
	7, 27, 8, 8, 27, 28, 8, 28, 9, 9, 28, 29,
	9, 29, 10, 10, 29, 30, 10, 30, 11, 11, 30, 31,
	11, 31, 12, 12, 31, 32, 12, 32, 13, 13, 32, 33,
	13, 33, 14, 14, 33, 34, 14, 34, 15, 15, 34, 35,
	15, 35, 16, 16, 35, 36, 16, 36, 17, 17, 36, 37,
	17, 37, 18, 18, 37, 38, 18, 38, 19, 19, 38, 39,
	19, 39, 20, 20, 39, 40, 20, 40, 1, 1, 40, 21,
	21, 41, 22, 22, 41, 42, 22, 42, 23, 23, 42, 43,
	23, 43, 24, 24, 43, 44, 24, 44, 25, 25, 44, 45,
	25, 45, 26, 26, 45, 46, 26, 46, 27, 27, 46, 47,
	27, 47, 28, 28, 47, 48, 28, 48, 29, 29, 48, 49,
	29, 49, 30, 30, 49, 50, 30, 50, 31, 31, 50, 51,
	31, 51, 32, 32, 51, 52, 32, 52, 33, 33, 52, 53,
	33, 53, 34, 34, 53, 54, 34, 54, 35, 35, 54, 55,
	35, 55, 36, 36, 55, 56, 36, 56, 37, 37, 56, 57,
	37, 57, 38, 38, 57, 58, 38, 58, 39, 39, 58, 59,
	39, 59, 40, 40, 59, 60, 40, 60, 21, 21, 60, 41,
	41, 61, 42, 42, 61, 62, 42, 62, 43, 43, 62, 63,
	43, 63, 44, 44, 63, 64, 44, 64, 45, 45, 64, 65,
	45, 65, 46, 46, 65, 66, 46, 66, 47, 47, 66, 67,
	47, 67, 48, 48, 67, 68, 48, 68, 49, 49, 68, 69,
	49, 69, 50, 50, 69, 70, 50, 70, 51, 51, 70, 71,
	51, 71, 52, 52, 71, 72, 52, 72, 53, 53, 72, 73,
	53, 73, 54, 54, 73, 74, 54, 74, 55, 55, 74, 75,
	55, 75, 56, 56, 75, 76, 56, 76, 57, 57, 76, 77,
	57, 77, 58, 58, 77, 78, 58, 78, 59, 59, 78, 79,
	59, 79, 60, 60, 79, 80, 60, 80, 41, 41, 80, 61,
	61, 81, 62, 62, 81, 82, 62, 82, 63, 63, 82, 83,
	63, 83, 64, 64, 83, 84, 64, 84, 65, 65, 84, 85,
	65, 85, 66, 66, 85, 86, 66, 86, 67, 67, 86, 87,
	67, 87, 68, 68, 87, 88, 68, 88, 69, 69, 88, 89,
	69, 89, 70, 70, 89, 90, 70, 90, 71, 71, 90, 91,
	71, 91, 72, 72, 91, 92, 72, 92, 73, 73, 92, 93,
	73, 93, 74, 74, 93, 94, 74, 94, 75, 75, 94, 95,
	75, 95, 76, 76, 95, 96, 76, 96, 77, 77, 96, 97,
	77, 97, 78, 78, 97, 98, 78, 98, 79, 79, 98, 99,
	79, 99, 80, 80, 99, 100, 80, 100, 61, 61, 100, 81,
	81, 101, 82, 82, 101, 102, 82, 102, 83, 83, 102, 103,
	83, 103, 84, 84, 103, 104, 84, 104, 85, 85, 104, 105,
	85, 105, 86, 86, 105, 106, 86, 106, 87, 87, 106, 107,
	87, 107, 88, 88, 107, 108, 88, 108, 89, 89, 108, 109,
	89, 109, 90, 90, 109, 110, 90, 110, 91, 91, 110, 111,
	91, 111, 92, 92, 111, 112, 92, 112, 93, 93, 112, 113,
	93, 113, 94, 94, 113, 114, 94, 114, 95, 95, 114, 115,
	95, 115, 96, 96, 115, 116, 96, 116, 97, 97, 116, 117,
	97, 117, 98, 98, 117, 118, 98, 118, 99, 99, 118, 119,
	99, 119, 100, 100, 119, 120, 100, 120, 81, 81, 120, 101,
	101, 121, 102, 102, 121, 122, 102, 122, 103, 103, 122, 123,
	103, 123, 104, 104, 123, 124, 104, 124, 105, 105, 124, 125,
	105, 125, 106, 106, 125, 126, 106, 126, 107, 107, 126, 127,
	107, 127, 108, 108, 127, 128, 108, 128, 109, 109, 128, 129,
	109, 129, 110, 110, 129, 130, 110, 130, 111, 111, 130, 131,
	111, 131, 112, 112, 131, 132, 112, 132, 113, 113, 132, 133,
	113, 133, 114, 114, 133, 134, 114, 134, 115, 115, 134, 135,
	115, 135, 116, 116, 135, 136, 116, 136, 117, 117, 136, 137,
	117, 137, 118, 118, 137, 138, 118, 138, 119, 119, 138, 139,
	119, 139, 120, 120, 139, 140, 120, 140, 101, 101, 140, 121,
	121, 141, 122, 122, 141, 142, 122, 142, 123, 123, 142, 143,
	123, 143, 124, 124, 143, 144, 124, 144, 125, 125, 144, 145,
	125, 145, 126, 126, 145, 146, 126, 146, 127, 127, 146, 147,
	127, 147, 128, 128, 147, 148, 128, 148, 129, 129, 148, 149,
	129, 149, 130, 130, 149, 150, 130, 150, 131, 131, 150, 151,
	131, 151, 132, 132, 151, 152, 132, 152, 133, 133, 152, 153,
	133, 153, 134, 134, 153, 154, 134, 154, 135, 135, 154, 155,
	135, 155, 136, 136, 155, 156, 136, 156, 137, 137, 156, 157,
	137, 157, 138, 138, 157, 158, 138, 158, 139, 139, 158, 159,
	139, 159, 140, 140, 159, 160, 140, 160, 121, 121, 160, 141,
	141, 161, 142, 142, 161, 162, 142, 162, 143, 143, 162, 163,
	143, 163, 144, 144, 163, 164, 144, 164, 145, 145, 164, 165,
	145, 165, 146, 146, 165, 166, 146, 166, 147, 147, 166, 167,
	147, 167, 148, 148, 167, 168, 148, 168, 149, 149, 168, 169,
	149, 169, 150, 150, 169, 170, 150, 170, 151, 151, 170, 171,
	151, 171, 152, 152, 171, 172, 152, 172, 153, 153, 172, 173,
	153, 173, 154, 154, 173, 174, 154, 174, 155, 155, 174, 175,
	155, 175, 156, 156, 175, 176, 156, 176, 157, 157, 176, 177,
	157, 177, 158, 158, 177, 178, 158, 178, 159, 159, 178, 179,
	159, 179, 160, 160, 179, 180, 160, 180, 141, 141, 180, 161,
	161, 181, 162, 162, 181, 182, 162, 182, 163, 163, 182, 183,
	163, 183, 164, 164, 183, 184, 164, 184, 165, 165, 184, 185,
	165, 185, 166, 166, 185, 186, 166, 186, 167, 167, 186, 187,
	167, 187, 168, 168, 187, 188, 168, 188, 169, 169, 188, 189,
	169, 189, 170, 170, 189, 190, 170, 190, 171, 171, 190, 191,
	171, 191, 172, 172, 191, 192, 172, 192, 173, 173, 192, 193,
	173, 193, 174, 174, 193, 194, 174, 194, 175, 175, 194, 195,
	175, 195, 176, 176, 195, 196, 176, 196, 177, 177, 196, 197,
	177, 197, 178, 178, 197, 198, 178, 198, 179, 179, 198, 199,
	179, 199, 180, 180, 199, 200, 180, 200, 161, 161, 200, 181,
	181, 201, 182, 182, 201, 202, 182, 202, 183, 183, 202, 203,
	183, 203, 184, 184, 203, 204, 184, 204, 185, 185, 204, 205,
	185, 205, 186, 186, 205, 206, 186, 206, 187, 187, 206, 207,
	187, 207, 188, 188, 207, 208, 188, 208, 189, 189, 208, 209,
	189, 209, 190, 190, 209, 210, 190, 210, 191, 191, 210, 211,
	191, 211, 192, 192, 211, 212, 192, 212, 193, 193, 212, 213,
	193, 213, 194, 194, 213, 214, 194, 214, 195, 195, 214, 215,
	195, 215, 196, 196, 215, 216, 196, 216, 197, 197, 216, 217,
	197, 217, 198, 198, 217, 218, 198, 218, 199, 199, 218, 219,
	199, 219, 200, 200, 219, 220, 200, 220, 181, 181, 220, 201,
	201, 221, 202, 202, 221, 222, 202, 222, 203, 203, 222, 223,
	203, 223, 204, 204, 223, 224, 204, 224, 205, 205, 224, 225,
	205, 225, 206, 206, 225, 226, 206, 226, 207, 207, 226, 227,
	207, 227, 208, 208, 227, 228, 208, 228, 209, 209, 228, 229,
	209, 229, 210, 210, 229, 230, 210, 230, 211, 211, 230, 231,
	211, 231, 212, 212, 231, 232, 212, 232, 213, 213, 232, 233,
	213, 233, 214, 214, 233, 234, 214, 234, 215, 215, 234, 235,
	215, 235, 216, 216, 235, 236, 216, 236, 217, 217, 236, 237,
	217, 237, 218, 218, 237, 238, 218, 238, 219, 219, 238, 239,
	219, 239, 220, 220, 239, 240, 220, 240, 201, 201, 240, 221,
	221, 241, 222, 222, 241, 242, 222, 242, 223, 223, 242, 243,
	223, 243, 224, 224, 243, 244, 224, 244, 225, 225, 244, 245,
	225, 245, 226, 226, 245, 246, 226, 246, 227, 227, 246, 247,
	227, 247, 228, 228, 247, 248, 228, 248, 229, 229, 248, 249,
	229, 249, 230, 230, 249, 250, 230, 250, 231, 231, 250, 251,
	231, 251, 232, 232, 251, 252, 232, 252, 233, 233, 252, 253,
	233, 253, 234, 234, 253, 254, 234, 254, 235, 235, 254, 255,
	235, 255, 236, 236, 255, 256, 236, 256, 237, 237, 256, 257,
	237, 257, 238, 238, 257, 258, 238, 258, 239, 239, 258, 259,
	239, 259, 240, 240, 259, 260, 240, 260, 221, 221, 260, 241,
	241, 261, 242, 242, 261, 262, 242, 262, 243, 243, 262, 263,
	243, 263, 244, 244, 263, 264, 244, 264, 245, 245, 264, 265,
	245, 265, 246, 246, 265, 266, 246, 266, 247, 247, 266, 267,
	247, 267, 248, 248, 267, 268, 248, 268, 249, 249, 268, 269,
	249, 269, 250, 250, 269, 270, 250, 270, 251, 251, 270, 271,
	251, 271, 252, 252, 271, 272, 252, 272, 253, 253, 272, 273,
	253, 273, 254, 254, 273, 274, 254, 274, 255, 255, 274, 275,
	255, 275, 256, 256, 275, 276, 256, 276, 257, 257, 276, 277,
	257, 277, 258, 258, 277, 278, 258, 278, 259, 259, 278, 279,
	259, 279, 260, 260, 279, 280, 260, 280, 241, 241, 280, 261,
	281, 262, 261, 281, 263, 262, 281, 264, 263, 281, 265, 264,
	281, 266, 265, 281, 267, 266, 281, 268, 267, 281, 269, 268,
	281, 270, 269, 281, 271, 270, 281, 272, 271, 281, 273, 272,
	281, 274, 273, 281, 275, 274, 281, 276, 275, 281, 277, 276,
	281, 278, 277, 281, 279, 278, 281, 280, 279, 281, 261, 280,
}
