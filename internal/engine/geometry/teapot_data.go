package geometry

// Low-poly teapot: lathed body and lid, tube handle on -X and spout on +X.
// Normals are indexed separately from positions.
var teapotVertices = [...][3]float32{
	{0, -0.125, 0}, {0, -0.125, 0}, {0, -0.125, 0},
	{0, -0.125, 0}, {0, -0.125, 0}, {0, -0.125, 0},
	{0, -0.125, 0}, {0, -0.125, 0}, {0, -0.125, 0},
	{0, -0.125, 0}, {0, -0.125, 0}, {0, -0.125, 0},
	{0, -0.125, 0}, {0, -0.125, 0}, {0, -0.125, 0},
	{0, -0.125, 0}, {0.09, -0.125, 0}, {0.0831492, -0.125, 0.0344415},
	{0.0636396, -0.125, 0.0636396}, {0.0344415, -0.125, 0.0831492}, {0, -0.125, 0.09},
	{-0.0344415, -0.125, 0.0831492}, {-0.0636396, -0.125, 0.0636396}, {-0.0831492, -0.125, 0.0344415},
	{-0.09, -0.125, 0}, {-0.0831492, -0.125, -0.0344415}, {-0.0636396, -0.125, -0.0636396},
	{-0.0344415, -0.125, -0.0831492}, {0, -0.125, -0.09}, {0.0344415, -0.125, -0.0831492},
	{0.0636396, -0.125, -0.0636396}, {0.0831492, -0.125, -0.0344415}, {0.15, -0.11, 0},
	{0.138582, -0.11, 0.0574025}, {0.106066, -0.11, 0.106066}, {0.0574025, -0.11, 0.138582},
	{0, -0.11, 0.15}, {-0.0574025, -0.11, 0.138582}, {-0.106066, -0.11, 0.106066},
	{-0.138582, -0.11, 0.0574025}, {-0.15, -0.11, 0}, {-0.138582, -0.11, -0.0574025},
	{-0.106066, -0.11, -0.106066}, {-0.0574025, -0.11, -0.138582}, {0, -0.11, -0.15},
	{0.0574025, -0.11, -0.138582}, {0.106066, -0.11, -0.106066}, {0.138582, -0.11, -0.0574025},
	{0.185, -0.075, 0}, {0.170918, -0.075, 0.0707964}, {0.130815, -0.075, 0.130815},
	{0.0707964, -0.075, 0.170918}, {0, -0.075, 0.185}, {-0.0707964, -0.075, 0.170918},
	{-0.130815, -0.075, 0.130815}, {-0.170918, -0.075, 0.0707964}, {-0.185, -0.075, 0},
	{-0.170918, -0.075, -0.0707964}, {-0.130815, -0.075, -0.130815}, {-0.0707964, -0.075, -0.170918},
	{0, -0.075, -0.185}, {0.0707964, -0.075, -0.170918}, {0.130815, -0.075, -0.130815},
	{0.170918, -0.075, -0.0707964}, {0.2, -0.03, 0}, {0.184776, -0.03, 0.0765367},
	{0.141421, -0.03, 0.141421}, {0.0765367, -0.03, 0.184776}, {0, -0.03, 0.2},
	{-0.0765367, -0.03, 0.184776}, {-0.141421, -0.03, 0.141421}, {-0.184776, -0.03, 0.0765367},
	{-0.2, -0.03, 0}, {-0.184776, -0.03, -0.0765367}, {-0.141421, -0.03, -0.141421},
	{-0.0765367, -0.03, -0.184776}, {0, -0.03, -0.2}, {0.0765367, -0.03, -0.184776},
	{0.141421, -0.03, -0.141421}, {0.184776, -0.03, -0.0765367}, {0.195, 0.02, 0},
	{0.180157, 0.02, 0.0746233}, {0.137886, 0.02, 0.137886}, {0.0746233, 0.02, 0.180157},
	{0, 0.02, 0.195}, {-0.0746233, 0.02, 0.180157}, {-0.137886, 0.02, 0.137886},
	{-0.180157, 0.02, 0.0746233}, {-0.195, 0.02, 0}, {-0.180157, 0.02, -0.0746233},
	{-0.137886, 0.02, -0.137886}, {-0.0746233, 0.02, -0.180157}, {0, 0.02, -0.195},
	{0.0746233, 0.02, -0.180157}, {0.137886, 0.02, -0.137886}, {0.180157, 0.02, -0.0746233},
	{0.175, 0.065, 0}, {0.161679, 0.065, 0.0669696}, {0.123744, 0.065, 0.123744},
	{0.0669696, 0.065, 0.161679}, {0, 0.065, 0.175}, {-0.0669696, 0.065, 0.161679},
	{-0.123744, 0.065, 0.123744}, {-0.161679, 0.065, 0.0669696}, {-0.175, 0.065, 0},
	{-0.161679, 0.065, -0.0669696}, {-0.123744, 0.065, -0.123744}, {-0.0669696, 0.065, -0.161679},
	{0, 0.065, -0.175}, {0.0669696, 0.065, -0.161679}, {0.123744, 0.065, -0.123744},
	{0.161679, 0.065, -0.0669696}, {0.15, 0.1, 0}, {0.138582, 0.1, 0.0574025},
	{0.106066, 0.1, 0.106066}, {0.0574025, 0.1, 0.138582}, {0, 0.1, 0.15},
	{-0.0574025, 0.1, 0.138582}, {-0.106066, 0.1, 0.106066}, {-0.138582, 0.1, 0.0574025},
	{-0.15, 0.1, 0}, {-0.138582, 0.1, -0.0574025}, {-0.106066, 0.1, -0.106066},
	{-0.0574025, 0.1, -0.138582}, {0, 0.1, -0.15}, {0.0574025, 0.1, -0.138582},
	{0.106066, 0.1, -0.106066}, {0.138582, 0.1, -0.0574025}, {0.13, 0.115, 0},
	{0.120104, 0.115, 0.0497488}, {0.0919239, 0.115, 0.0919239}, {0.0497488, 0.115, 0.120104},
	{0, 0.115, 0.13}, {-0.0497488, 0.115, 0.120104}, {-0.0919239, 0.115, 0.0919239},
	{-0.120104, 0.115, 0.0497488}, {-0.13, 0.115, 0}, {-0.120104, 0.115, -0.0497488},
	{-0.0919239, 0.115, -0.0919239}, {-0.0497488, 0.115, -0.120104}, {0, 0.115, -0.13},
	{0.0497488, 0.115, -0.120104}, {0.0919239, 0.115, -0.0919239}, {0.120104, 0.115, -0.0497488},
	{0.135, 0.115, 0}, {0.124724, 0.115, 0.0516623}, {0.0954594, 0.115, 0.0954594},
	{0.0516623, 0.115, 0.124724}, {0, 0.115, 0.135}, {-0.0516623, 0.115, 0.124724},
	{-0.0954594, 0.115, 0.0954594}, {-0.124724, 0.115, 0.0516623}, {-0.135, 0.115, 0},
	{-0.124724, 0.115, -0.0516623}, {-0.0954594, 0.115, -0.0954594}, {-0.0516623, 0.115, -0.124724},
	{0, 0.115, -0.135}, {0.0516623, 0.115, -0.124724}, {0.0954594, 0.115, -0.0954594},
	{0.124724, 0.115, -0.0516623}, {0.12, 0.135, 0}, {0.110866, 0.135, 0.045922},
	{0.0848528, 0.135, 0.0848528}, {0.045922, 0.135, 0.110866}, {0, 0.135, 0.12},
	{-0.045922, 0.135, 0.110866}, {-0.0848528, 0.135, 0.0848528}, {-0.110866, 0.135, 0.045922},
	{-0.12, 0.135, 0}, {-0.110866, 0.135, -0.045922}, {-0.0848528, 0.135, -0.0848528},
	{-0.045922, 0.135, -0.110866}, {0, 0.135, -0.12}, {0.045922, 0.135, -0.110866},
	{0.0848528, 0.135, -0.0848528}, {0.110866, 0.135, -0.045922}, {0.085, 0.15, 0},
	{0.0785298, 0.15, 0.0325281}, {0.0601041, 0.15, 0.0601041}, {0.0325281, 0.15, 0.0785298},
	{0, 0.15, 0.085}, {-0.0325281, 0.15, 0.0785298}, {-0.0601041, 0.15, 0.0601041},
	{-0.0785298, 0.15, 0.0325281}, {-0.085, 0.15, 0}, {-0.0785298, 0.15, -0.0325281},
	{-0.0601041, 0.15, -0.0601041}, {-0.0325281, 0.15, -0.0785298}, {0, 0.15, -0.085},
	{0.0325281, 0.15, -0.0785298}, {0.0601041, 0.15, -0.0601041}, {0.0785298, 0.15, -0.0325281},
	{0.03, 0.16, 0}, {0.0277164, 0.16, 0.0114805}, {0.0212132, 0.16, 0.0212132},
	{0.0114805, 0.16, 0.0277164}, {0, 0.16, 0.03}, {-0.0114805, 0.16, 0.0277164},
	{-0.0212132, 0.16, 0.0212132}, {-0.0277164, 0.16, 0.0114805}, {-0.03, 0.16, 0},
	{-0.0277164, 0.16, -0.0114805}, {-0.0212132, 0.16, -0.0212132}, {-0.0114805, 0.16, -0.0277164},
	{0, 0.16, -0.03}, {0.0114805, 0.16, -0.0277164}, {0.0212132, 0.16, -0.0212132},
	{0.0277164, 0.16, -0.0114805}, {0.02, 0.175, 0}, {0.0184776, 0.175, 0.00765367},
	{0.0141421, 0.175, 0.0141421}, {0.00765367, 0.175, 0.0184776}, {0, 0.175, 0.02},
	{-0.00765367, 0.175, 0.0184776}, {-0.0141421, 0.175, 0.0141421}, {-0.0184776, 0.175, 0.00765367},
	{-0.02, 0.175, 0}, {-0.0184776, 0.175, -0.00765367}, {-0.0141421, 0.175, -0.0141421},
	{-0.00765367, 0.175, -0.0184776}, {0, 0.175, -0.02}, {0.00765367, 0.175, -0.0184776},
	{0.0141421, 0.175, -0.0141421}, {0.0184776, 0.175, -0.00765367}, {0.035, 0.19, 0},
	{0.0323358, 0.19, 0.0133939}, {0.0247487, 0.19, 0.0247487}, {0.0133939, 0.19, 0.0323358},
	{0, 0.19, 0.035}, {-0.0133939, 0.19, 0.0323358}, {-0.0247487, 0.19, 0.0247487},
	{-0.0323358, 0.19, 0.0133939}, {-0.035, 0.19, 0}, {-0.0323358, 0.19, -0.0133939},
	{-0.0247487, 0.19, -0.0247487}, {-0.0133939, 0.19, -0.0323358}, {0, 0.19, -0.035},
	{0.0133939, 0.19, -0.0323358}, {0.0247487, 0.19, -0.0247487}, {0.0323358, 0.19, -0.0133939},
	{0.02, 0.2, 0}, {0.0184776, 0.2, 0.00765367}, {0.0141421, 0.2, 0.0141421},
	{0.00765367, 0.2, 0.0184776}, {0, 0.2, 0.02}, {-0.00765367, 0.2, 0.0184776},
	{-0.0141421, 0.2, 0.0141421}, {-0.0184776, 0.2, 0.00765367}, {-0.02, 0.2, 0},
	{-0.0184776, 0.2, -0.00765367}, {-0.0141421, 0.2, -0.0141421}, {-0.00765367, 0.2, -0.0184776},
	{0, 0.2, -0.02}, {0.00765367, 0.2, -0.0184776}, {0.0141421, 0.2, -0.0141421},
	{0.0184776, 0.2, -0.00765367}, {0, 0.2, 0}, {0, 0.2, 0},
	{0, 0.2, 0}, {0, 0.2, 0}, {0, 0.2, 0},
	{0, 0.2, 0}, {0, 0.2, 0}, {0, 0.2, 0},
	{0, 0.2, 0}, {0, 0.2, 0}, {0, 0.2, 0},
	{0, 0.2, 0}, {0, 0.2, 0}, {0, 0.2, 0},
	{0, 0.2, 0}, {0, 0.2, 0}, {-0.186264, -0.052392, 0},
	{-0.187358, -0.0575492, 0.0127279}, {-0.19, -0.07, 0.018}, {-0.192642, -0.0824508, 0.0127279},
	{-0.193736, -0.087608, 0}, {-0.192642, -0.0824508, -0.0127279}, {-0.19, -0.07, -0.018},
	{-0.187358, -0.0575492, -0.0127279}, {-0.211427, -0.0474458, 0}, {-0.213557, -0.0522682, 0.0127279},
	{-0.218701, -0.0639104, 0.018}, {-0.223845, -0.0755526, 0.0127279}, {-0.225976, -0.0803749, 0},
	{-0.223845, -0.0755526, -0.0127279}, {-0.218701, -0.0639104, -0.018}, {-0.213557, -0.0522682, -0.0127279},
	{-0.229901, -0.0342576, 0}, {-0.233748, -0.0378634, 0.0127279}, {-0.243033, -0.0465685, 0.018},
	{-0.252319, -0.0552737, 0.0127279}, {-0.256165, -0.0588795, 0}, {-0.252319, -0.0552737, -0.0127279},
	{-0.243033, -0.0465685, -0.018}, {-0.233748, -0.0378634, -0.0127279}, {-0.242512, -0.0140989, 0},
	{-0.247426, -0.0160073, 0.0127279}, {-0.259291, -0.0206147, 0.018}, {-0.271156, -0.0252221, 0.0127279},
	{-0.27607, -0.0271305, 0}, {-0.271156, -0.0252221, -0.0127279}, {-0.259291, -0.0206147, -0.018},
	{-0.247426, -0.0160073, -0.0127279}, {-0.247, 0.01, 0}, {-0.252272, 0.01, 0.0127279},
	{-0.265, 0.01, 0.018}, {-0.277728, 0.01, 0.0127279}, {-0.283, 0.01, 0},
	{-0.277728, 0.01, -0.0127279}, {-0.265, 0.01, -0.018}, {-0.252272, 0.01, -0.0127279},
	{-0.242512, 0.0340989, 0}, {-0.247426, 0.0360073, 0.0127279}, {-0.259291, 0.0406147, 0.018},
	{-0.271156, 0.0452221, 0.0127279}, {-0.27607, 0.0471305, 0}, {-0.271156, 0.0452221, -0.0127279},
	{-0.259291, 0.0406147, -0.018}, {-0.247426, 0.0360073, -0.0127279}, {-0.229901, 0.0542576, 0},
	{-0.233748, 0.0578634, 0.0127279}, {-0.243033, 0.0665685, 0.018}, {-0.252319, 0.0752737, 0.0127279},
	{-0.256165, 0.0788795, 0}, {-0.252319, 0.0752737, -0.0127279}, {-0.243033, 0.0665685, -0.018},
	{-0.233748, 0.0578634, -0.0127279}, {-0.211427, 0.0674458, 0}, {-0.213557, 0.0722682, 0.0127279},
	{-0.218701, 0.0839104, 0.018}, {-0.223845, 0.0955526, 0.0127279}, {-0.225976, 0.100375, 0},
	{-0.223845, 0.0955526, -0.0127279}, {-0.218701, 0.0839104, -0.018}, {-0.213557, 0.0722682, -0.0127279},
	{-0.186264, 0.072392, 0}, {-0.187358, 0.0775492, 0.0127279}, {-0.19, 0.09, 0.018},
	{-0.192642, 0.102451, 0.0127279}, {-0.193736, 0.107608, 0}, {-0.192642, 0.102451, -0.0127279},
	{-0.19, 0.09, -0.018}, {-0.187358, 0.0775492, -0.0127279}, {0.190319, -0.0844546, 0},
	{0.184368, -0.0743631, 0.0282843}, {0.17, -0.05, 0.04}, {0.155632, -0.0256369, 0.0282843},
	{0.149681, -0.0155454, 0}, {0.155632, -0.0256369, -0.0282843}, {0.17, -0.05, -0.04},
	{0.184368, -0.0743631, -0.0282843}, {0.214275, -0.0656648, 0}, {0.207653, -0.0573342, 0.0256915},
	{0.191667, -0.0372222, 0.0363333}, {0.17568, -0.0171103, 0.0256915}, {0.169058, -0.00877964, 0},
	{0.17568, -0.0171103, -0.0256915}, {0.191667, -0.0372222, -0.0363333}, {0.207653, -0.0573342, -0.0256915},
	{0.238472, -0.0364156, 0}, {0.231109, -0.0303058, 0.0230988}, {0.213333, -0.0155556, 0.0326667},
	{0.195557, -0.000805284, 0.0230988}, {0.188194, 0.00530448, 0}, {0.195557, -0.000805284, -0.0230988},
	{0.213333, -0.0155556, -0.0326667}, {0.231109, -0.0303058, -0.0230988}, {0.259658, -0.000264284, 0},
	{0.252436, 0.00420652, 0.0205061}, {0.235, 0.015, 0.029}, {0.217564, 0.0257935, 0.0205061},
	{0.210342, 0.0302643, 0}, {0.217564, 0.0257935, -0.0205061}, {0.235, 0.015, -0.029},
	{0.252436, 0.00420652, -0.0205061}, {0.279383, 0.0432302, 0}, {0.272729, 0.0465148, 0.0179134},
	{0.256667, 0.0544444, 0.0253333}, {0.240604, 0.0623741, 0.0179134}, {0.233951, 0.0656587, 0},
	{0.240604, 0.0623741, -0.0179134}, {0.256667, 0.0544444, -0.0253333}, {0.272729, 0.0465148, -0.0179134},
	{0.298377, 0.0945494, 0}, {0.292506, 0.0969595, 0.0153206}, {0.278333, 0.102778, 0.0216667},
	{0.26416, 0.108596, 0.0153206}, {0.25829, 0.111006, 0}, {0.26416, 0.108596, -0.0153206},
	{0.278333, 0.102778, -0.0216667}, {0.292506, 0.0969595, -0.0153206}, {0.316834, 0.153626, 0},
	{0.311903, 0.155493, 0.0127279}, {0.3, 0.16, 0.018}, {0.288097, 0.164507, 0.0127279},
	{0.283166, 0.166374, 0}, {0.288097, 0.164507, -0.0127279}, {0.3, 0.16, -0.018},
	{0.311903, 0.155493, -0.0127279},
}

var teapotNormals = [...][3]float32{
	{0, -1, 0}, {0, -1, 0}, {0, -1, 0},
	{0, -1, 0}, {0, -1, 0}, {0, -1, 0},
	{0, -1, 0}, {0, -1, 0}, {0, -1, 0},
	{0, -1, 0}, {0, -1, 0}, {0, -1, 0},
	{0, -1, 0}, {0, -1, 0}, {0, -1, 0},
	{0, -1, 0}, {0.0995037, -0.995037, 0}, {0.0919294, -0.995037, 0.0380784},
	{0.0703598, -0.995037, 0.0703598}, {0.0380784, -0.995037, 0.0919294}, {0, -0.995037, 0.0995037},
	{-0.0380784, -0.995037, 0.0919294}, {-0.0703598, -0.995037, 0.0703598}, {-0.0919294, -0.995037, 0.0380784},
	{-0.0995037, -0.995037, 0}, {-0.0919294, -0.995037, -0.0380784}, {-0.0703598, -0.995037, -0.0703598},
	{-0.0380784, -0.995037, -0.0919294}, {0, -0.995037, -0.0995037}, {0.0380784, -0.995037, -0.0919294},
	{0.0703598, -0.995037, -0.0703598}, {0.0919294, -0.995037, -0.0380784}, {0.465746, -0.884918, 0},
	{0.430294, -0.884918, 0.178233}, {0.329332, -0.884918, 0.329332}, {0.178233, -0.884918, 0.430294},
	{0, -0.884918, 0.465746}, {-0.178233, -0.884918, 0.430294}, {-0.329332, -0.884918, 0.329332},
	{-0.430294, -0.884918, 0.178233}, {-0.465746, -0.884918, 0}, {-0.430294, -0.884918, -0.178233},
	{-0.329332, -0.884918, -0.329332}, {-0.178233, -0.884918, -0.430294}, {0, -0.884918, -0.465746},
	{0.178233, -0.884918, -0.430294}, {0.329332, -0.884918, -0.329332}, {0.430294, -0.884918, -0.178233},
	{0.847998, -0.529999, 0}, {0.783448, -0.529999, 0.324515}, {0.599625, -0.529999, 0.599625},
	{0.324515, -0.529999, 0.783448}, {0, -0.529999, 0.847998}, {-0.324515, -0.529999, 0.783448},
	{-0.599625, -0.529999, 0.599625}, {-0.783448, -0.529999, 0.324515}, {-0.847998, -0.529999, 0},
	{-0.783448, -0.529999, -0.324515}, {-0.599625, -0.529999, -0.599625}, {-0.324515, -0.529999, -0.783448},
	{0, -0.529999, -0.847998}, {0.324515, -0.529999, -0.783448}, {0.599625, -0.529999, -0.599625},
	{0.783448, -0.529999, -0.324515}, {0.994505, -0.104685, 0}, {0.918803, -0.104685, 0.380581},
	{0.703222, -0.104685, 0.703222}, {0.380581, -0.104685, 0.918803}, {0, -0.104685, 0.994505},
	{-0.380581, -0.104685, 0.918803}, {-0.703222, -0.104685, 0.703222}, {-0.918803, -0.104685, 0.380581},
	{-0.994505, -0.104685, 0}, {-0.918803, -0.104685, -0.380581}, {-0.703222, -0.104685, -0.703222},
	{-0.380581, -0.104685, -0.918803}, {0, -0.104685, -0.994505}, {0.380581, -0.104685, -0.918803},
	{0.703222, -0.104685, -0.703222}, {0.918803, -0.104685, -0.380581}, {0.967075, 0.254493, 0},
	{0.89346, 0.254493, 0.370083}, {0.683825, 0.254493, 0.683825}, {0.370083, 0.254493, 0.89346},
	{0, 0.254493, 0.967075}, {-0.370083, 0.254493, 0.89346}, {-0.683825, 0.254493, 0.683825},
	{-0.89346, 0.254493, 0.370083}, {-0.967075, 0.254493, 0}, {-0.89346, 0.254493, -0.370083},
	{-0.683825, 0.254493, -0.683825}, {-0.370083, 0.254493, -0.89346}, {0, 0.254493, -0.967075},
	{0.370083, 0.254493, -0.89346}, {0.683825, 0.254493, -0.683825}, {0.89346, 0.254493, -0.370083},
	{0.871576, 0.490261, 0}, {0.805231, 0.490261, 0.333538}, {0.616297, 0.490261, 0.616297},
	{0.333538, 0.490261, 0.805231}, {0, 0.490261, 0.871576}, {-0.333538, 0.490261, 0.805231},
	{-0.616297, 0.490261, 0.616297}, {-0.805231, 0.490261, 0.333538}, {-0.871576, 0.490261, 0},
	{-0.805231, 0.490261, -0.333538}, {-0.616297, 0.490261, -0.616297}, {-0.333538, 0.490261, -0.805231},
	{0, 0.490261, -0.871576}, {0.333538, 0.490261, -0.805231}, {0.616297, 0.490261, -0.616297},
	{0.805231, 0.490261, -0.333538}, {0.743294, 0.668965, 0}, {0.686714, 0.668965, 0.284446},
	{0.525588, 0.668965, 0.525588}, {0.284446, 0.668965, 0.686714}, {0, 0.668965, 0.743294},
	{-0.284446, 0.668965, 0.686714}, {-0.525588, 0.668965, 0.525588}, {-0.686714, 0.668965, 0.284446},
	{-0.743294, 0.668965, 0}, {-0.686714, 0.668965, -0.284446}, {-0.525588, 0.668965, -0.525588},
	{-0.284446, 0.668965, -0.686714}, {0, 0.668965, -0.743294}, {0.284446, 0.668965, -0.686714},
	{0.525588, 0.668965, -0.525588}, {0.686714, 0.668965, -0.284446}, {0.6, 0.8, 0},
	{0.554328, 0.8, 0.22961}, {0.424264, 0.8, 0.424264}, {0.22961, 0.8, 0.554328},
	{0, 0.8, 0.6}, {-0.22961, 0.8, 0.554328}, {-0.424264, 0.8, 0.424264},
	{-0.554328, 0.8, 0.22961}, {-0.6, 0.8, 0}, {-0.554328, 0.8, -0.22961},
	{-0.424264, 0.8, -0.424264}, {-0.22961, 0.8, -0.554328}, {0, 0.8, -0.6},
	{0.22961, 0.8, -0.554328}, {0.424264, 0.8, -0.424264}, {0.554328, 0.8, -0.22961},
	{0.8, 0.6, 0}, {0.739104, 0.6, 0.306147}, {0.565685, 0.6, 0.565685},
	{0.306147, 0.6, 0.739104}, {0, 0.6, 0.8}, {-0.306147, 0.6, 0.739104},
	{-0.565685, 0.6, 0.565685}, {-0.739104, 0.6, 0.306147}, {-0.8, 0.6, 0},
	{-0.739104, 0.6, -0.306147}, {-0.565685, 0.6, -0.565685}, {-0.306147, 0.6, -0.739104},
	{0, 0.6, -0.8}, {0.306147, 0.6, -0.739104}, {0.565685, 0.6, -0.565685},
	{0.739104, 0.6, -0.306147}, {0.573462, 0.819232, 0}, {0.52981, 0.819232, 0.219455},
	{0.405499, 0.819232, 0.405499}, {0.219455, 0.819232, 0.52981}, {0, 0.819232, 0.573462},
	{-0.219455, 0.819232, 0.52981}, {-0.405499, 0.819232, 0.405499}, {-0.52981, 0.819232, 0.219455},
	{-0.573462, 0.819232, 0}, {-0.52981, 0.819232, -0.219455}, {-0.405499, 0.819232, -0.405499},
	{-0.219455, 0.819232, -0.52981}, {0, 0.819232, -0.573462}, {0.219455, 0.819232, -0.52981},
	{0.405499, 0.819232, -0.405499}, {0.52981, 0.819232, -0.219455}, {0.267644, 0.963518, 0},
	{0.247271, 0.963518, 0.102423}, {0.189253, 0.963518, 0.189253}, {0.102423, 0.963518, 0.247271},
	{0, 0.963518, 0.267644}, {-0.102423, 0.963518, 0.247271}, {-0.189253, 0.963518, 0.189253},
	{-0.247271, 0.963518, 0.102423}, {-0.267644, 0.963518, 0}, {-0.247271, 0.963518, -0.102423},
	{-0.189253, 0.963518, -0.189253}, {-0.102423, 0.963518, -0.247271}, {0, 0.963518, -0.267644},
	{0.102423, 0.963518, -0.247271}, {0.189253, 0.963518, -0.189253}, {0.247271, 0.963518, -0.102423},
	{0.358979, 0.933346, 0}, {0.331653, 0.933346, 0.137375}, {0.253837, 0.933346, 0.253837},
	{0.137375, 0.933346, 0.331653}, {0, 0.933346, 0.358979}, {-0.137375, 0.933346, 0.331653},
	{-0.253837, 0.933346, 0.253837}, {-0.331653, 0.933346, 0.137375}, {-0.358979, 0.933346, 0},
	{-0.331653, 0.933346, -0.137375}, {-0.253837, 0.933346, -0.253837}, {-0.137375, 0.933346, -0.331653},
	{0, 0.933346, -0.358979}, {0.137375, 0.933346, -0.331653}, {0.253837, 0.933346, -0.253837},
	{0.331653, 0.933346, -0.137375}, {0.986394, -0.164399, 0}, {0.911309, -0.164399, 0.377477},
	{0.697486, -0.164399, 0.697486}, {0.377477, -0.164399, 0.911309}, {0, -0.164399, 0.986394},
	{-0.377477, -0.164399, 0.911309}, {-0.697486, -0.164399, 0.697486}, {-0.911309, -0.164399, 0.377477},
	{-0.986394, -0.164399, 0}, {-0.911309, -0.164399, -0.377477}, {-0.697486, -0.164399, -0.697486},
	{-0.377477, -0.164399, -0.911309}, {0, -0.164399, -0.986394}, {0.377477, -0.164399, -0.911309},
	{0.697486, -0.164399, -0.697486}, {0.911309, -0.164399, -0.377477}, {1, 0, 0},
	{0.92388, 0, 0.382683}, {0.707107, 0, 0.707107}, {0.382683, 0, 0.92388},
	{0, 0, 1}, {-0.382683, 0, 0.92388}, {-0.707107, 0, 0.707107},
	{-0.92388, 0, 0.382683}, {-1, 0, 0}, {-0.92388, 0, -0.382683},
	{-0.707107, 0, -0.707107}, {-0.382683, 0, -0.92388}, {0, 0, -1},
	{0.382683, 0, -0.92388}, {0.707107, 0, -0.707107}, {0.92388, 0, -0.382683},
	{0.274721, 0.961524, 0}, {0.253809, 0.961524, 0.105131}, {0.194257, 0.961524, 0.194257},
	{0.105131, 0.961524, 0.253809}, {0, 0.961524, 0.274721}, {-0.105131, 0.961524, 0.253809},
	{-0.194257, 0.961524, 0.194257}, {-0.253809, 0.961524, 0.105131}, {-0.274721, 0.961524, 0},
	{-0.253809, 0.961524, -0.105131}, {-0.194257, 0.961524, -0.194257}, {-0.105131, 0.961524, -0.253809},
	{0, 0.961524, -0.274721}, {0.105131, 0.961524, -0.253809}, {0.194257, 0.961524, -0.194257},
	{0.253809, 0.961524, -0.105131}, {0, 1, 0}, {0, 1, 0},
	{0, 1, 0}, {0, 1, 0}, {0, 1, 0},
	{0, 1, 0}, {0, 1, 0}, {0, 1, 0},
	{0, 1, 0}, {0, 1, 0}, {0, 1, 0},
	{0, 1, 0}, {0, 1, 0}, {0, 1, 0},
	{0, 1, 0}, {0, 1, 0}, {0.207553, 0.978224, 0},
	{0.146762, 0.691709, 0.707107}, {0, 0, 1}, {-0.146762, -0.691709, 0.707107},
	{-0.207553, -0.978224, 0}, {-0.146762, -0.691709, -0.707107}, {0, 0, -1},
	{0.146762, 0.691709, -0.707107}, {0.404139, 0.914698, 0}, {0.285769, 0.646789, 0.707107},
	{0, 0, 1}, {-0.285769, -0.646789, 0.707107}, {-0.404139, -0.914698, 0},
	{-0.285769, -0.646789, -0.707107}, {0, 0, -1}, {0.285769, 0.646789, -0.707107},
	{0.729537, 0.683941, 0}, {0.515861, 0.483619, 0.707107}, {0, 0, 1},
	{-0.515861, -0.483619, 0.707107}, {-0.729537, -0.683941, 0}, {-0.515861, -0.483619, -0.707107},
	{0, 0, -1}, {0.515861, 0.483619, -0.707107}, {0.932182, 0.36199, 0},
	{0.659152, 0.255965, 0.707107}, {0, 0, 1}, {-0.659152, -0.255965, 0.707107},
	{-0.932182, -0.36199, 0}, {-0.659152, -0.255965, -0.707107}, {0, 0, -1},
	{0.659152, 0.255965, -0.707107}, {1, 0, 0}, {0.707107, 0, 0.707107},
	{0, 0, 1}, {-0.707107, 0, 0.707107}, {-1, 0, 0},
	{-0.707107, 0, -0.707107}, {0, 0, -1}, {0.707107, 0, -0.707107},
	{0.932182, -0.36199, 0}, {0.659152, -0.255965, 0.707107}, {0, 0, 1},
	{-0.659152, 0.255965, 0.707107}, {-0.932182, 0.36199, 0}, {-0.659152, 0.255965, -0.707107},
	{0, 0, -1}, {0.659152, -0.255965, -0.707107}, {0.729537, -0.683941, 0},
	{0.515861, -0.483619, 0.707107}, {0, 0, 1}, {-0.515861, 0.483619, 0.707107},
	{-0.729537, 0.683941, 0}, {-0.515861, 0.483619, -0.707107}, {0, 0, -1},
	{0.515861, -0.483619, -0.707107}, {0.404139, -0.914698, 0}, {0.285769, -0.646789, 0.707107},
	{0, 0, 1}, {-0.285769, 0.646789, 0.707107}, {-0.404139, 0.914698, 0},
	{-0.285769, 0.646789, -0.707107}, {0, 0, -1}, {0.285769, -0.646789, -0.707107},
	{0.207553, -0.978224, 0}, {0.146762, -0.691709, 0.707107}, {0, 0, 1},
	{-0.146762, 0.691709, 0.707107}, {-0.207553, 0.978224, 0}, {-0.146762, 0.691709, -0.707107},
	{0, 0, -1}, {0.146762, -0.691709, -0.707107}, {0.507985, -0.861366, 0},
	{0.3592, -0.609078, 0.707107}, {0, 0, 1}, {-0.3592, 0.609078, 0.707107},
	{-0.507985, 0.861366, 0}, {-0.3592, 0.609078, -0.707107}, {0, 0, -1},
	{0.3592, -0.609078, -0.707107}, {0.622244, -0.782823, 0}, {0.439993, -0.55354, 0.707107},
	{0, 0, 1}, {-0.439993, 0.55354, 0.707107}, {-0.622244, 0.782823, 0},
	{-0.439993, 0.55354, -0.707107}, {0, 0, -1}, {0.439993, -0.55354, -0.707107},
	{0.769562, -0.638572, 0}, {0.544162, -0.451539, 0.707107}, {0, 0, 1},
	{-0.544162, 0.451539, 0.707107}, {-0.769562, 0.638572, 0}, {-0.544162, 0.451539, -0.707107},
	{0, 0, -1}, {0.544162, -0.451539, -0.707107}, {0.850265, -0.526355, 0},
	{0.601228, -0.372189, 0.707107}, {0, 0, 1}, {-0.601228, 0.372189, 0.707107},
	{-0.850265, 0.526355, 0}, {-0.601228, 0.372189, -0.707107}, {0, 0, -1},
	{0.601228, -0.372189, -0.707107}, {0.896686, -0.442668, 0}, {0.634053, -0.313013, 0.707107},
	{0, 0, 1}, {-0.634053, 0.313013, 0.707107}, {-0.896686, 0.442668, 0},
	{-0.634053, 0.313013, -0.707107}, {0, 0, -1}, {0.634053, -0.313013, -0.707107},
	{0.925081, -0.37977, 0}, {0.654131, -0.268538, 0.707107}, {0, 0, 1},
	{-0.654131, 0.268538, 0.707107}, {-0.925081, 0.37977, 0}, {-0.654131, 0.268538, -0.707107},
	{0, 0, -1}, {0.654131, -0.268538, -0.707107}, {0.935205, -0.354107, 0},
	{0.66129, -0.250391, 0.707107}, {0, 0, 1}, {-0.66129, 0.250391, 0.707107},
	{-0.935205, 0.354107, 0}, {-0.66129, 0.250391, -0.707107}, {0, 0, -1},
	{0.66129, -0.250391, -0.707107},
}

var teapotElements = [...]uint32{
	0, 1, 17, 0, 16, 17, 1, 2, 18, 1, 17, 18,
	2, 3, 19, 2, 18, 19, 3, 4, 20, 3, 19, 20,
	4, 5, 21, 4, 20, 21, 5, 6, 22, 5, 21, 22,
	6, 7, 23, 6, 22, 23, 7, 8, 24, 7, 23, 24,
	8, 9, 25, 8, 24, 25, 9, 10, 26, 9, 25, 26,
	10, 11, 27, 10, 26, 27, 11, 12, 28, 11, 27, 28,
	12, 13, 29, 12, 28, 29, 13, 14, 30, 13, 29, 30,
	14, 15, 31, 14, 30, 31, 15, 0, 16, 15, 31, 16,
	16, 33, 17, 16, 32, 33, 17, 34, 18, 17, 33, 34,
	18, 35, 19, 18, 34, 35, 19, 36, 20, 19, 35, 36,
	20, 37, 21, 20, 36, 37, 21, 38, 22, 21, 37, 38,
	22, 39, 23, 22, 38, 39, 23, 40, 24, 23, 39, 40,
	24, 41, 25, 24, 40, 41, 25, 42, 26, 25, 41, 42,
	26, 43, 27, 26, 42, 43, 27, 44, 28, 27, 43, 44,
	28, 45, 29, 28, 44, 45, 29, 46, 30, 29, 45, 46,
	30, 47, 31, 30, 46, 47, 31, 32, 16, 31, 47, 32,
	32, 49, 33, 32, 48, 49, 33, 50, 34, 33, 49, 50,
	34, 51, 35, 34, 50, 51, 35, 52, 36, 35, 51, 52,
	36, 53, 37, 36, 52, 53, 37, 54, 38, 37, 53, 54,
	38, 55, 39, 38, 54, 55, 39, 56, 40, 39, 55, 56,
	40, 57, 41, 40, 56, 57, 41, 58, 42, 41, 57, 58,
	42, 59, 43, 42, 58, 59, 43, 60, 44, 43, 59, 60,
	44, 61, 45, 44, 60, 61, 45, 62, 46, 45, 61, 62,
	46, 63, 47, 46, 62, 63, 47, 48, 32, 47, 63, 48,
	48, 65, 49, 48, 64, 65, 49, 66, 50, 49, 65, 66,
	50, 67, 51, 50, 66, 67, 51, 68, 52, 51, 67, 68,
	52, 69, 53, 52, 68, 69, 53, 70, 54, 53, 69, 70,
	54, 71, 55, 54, 70, 71, 55, 72, 56, 55, 71, 72,
	56, 73, 57, 56, 72, 73, 57, 74, 58, 57, 73, 74,
	58, 75, 59, 58, 74, 75, 59, 76, 60, 59, 75, 76,
	60, 77, 61, 60, 76, 77, 61, 78, 62, 61, 77, 78,
	62, 79, 63, 62, 78, 79, 63, 64, 48, 63, 79, 64,
	64, 81, 65, 64, 80, 81, 65, 82, 66, 65, 81, 82,
	66, 83, 67, 66, 82, 83, 67, 84, 68, 67, 83, 84,
	68, 85, 69, 68, 84, 85, 69, 86, 70, 69, 85, 86,
	70, 87, 71, 70, 86, 87, 71, 88, 72, 71, 87, 88,
	72, 89, 73, 72, 88, 89, 73, 90, 74, 73, 89, 90,
	74, 91, 75, 74, 90, 91, 75, 92, 76, 75, 91, 92,
	76, 93, 77, 76, 92, 93, 77, 94, 78, 77, 93, 94,
	78, 95, 79, 78, 94, 95, 79, 80, 64, 79, 95, 80,
	80, 97, 81, 80, 96, 97, 81, 98, 82, 81, 97, 98,
	82, 99, 83, 82, 98, 99, 83, 100, 84, 83, 99, 100,
	84, 101, 85, 84, 100, 101, 85, 102, 86, 85, 101, 102,
	86, 103, 87, 86, 102, 103, 87, 104, 88, 87, 103, 104,
	88, 105, 89, 88, 104, 105, 89, 106, 90, 89, 105, 106,
	90, 107, 91, 90, 106, 107, 91, 108, 92, 91, 107, 108,
	92, 109, 93, 92, 108, 109, 93, 110, 94, 93, 109, 110,
	94, 111, 95, 94, 110, 111, 95, 96, 80, 95, 111, 96,
	96, 113, 97, 96, 112, 113, 97, 114, 98, 97, 113, 114,
	98, 115, 99, 98, 114, 115, 99, 116, 100, 99, 115, 116,
	100, 117, 101, 100, 116, 117, 101, 118, 102, 101, 117, 118,
	102, 119, 103, 102, 118, 119, 103, 120, 104, 103, 119, 120,
	104, 121, 105, 104, 120, 121, 105, 122, 106, 105, 121, 122,
	106, 123, 107, 106, 122, 123, 107, 124, 108, 107, 123, 124,
	108, 125, 109, 108, 124, 125, 109, 126, 110, 109, 125, 126,
	110, 127, 111, 110, 126, 127, 111, 112, 96, 111, 127, 112,
	112, 129, 113, 112, 128, 129, 113, 130, 114, 113, 129, 130,
	114, 131, 115, 114, 130, 131, 115, 132, 116, 115, 131, 132,
	116, 133, 117, 116, 132, 133, 117, 134, 118, 117, 133, 134,
	118, 135, 119, 118, 134, 135, 119, 136, 120, 119, 135, 136,
	120, 137, 121, 120, 136, 137, 121, 138, 122, 121, 137, 138,
	122, 139, 123, 122, 138, 139, 123, 140, 124, 123, 139, 140,
	124, 141, 125, 124, 140, 141, 125, 142, 126, 125, 141, 142,
	126, 143, 127, 126, 142, 143, 127, 128, 112, 127, 143, 128,
	144, 161, 145, 144, 160, 161, 145, 162, 146, 145, 161, 162,
	146, 163, 147, 146, 162, 163, 147, 164, 148, 147, 163, 164,
	148, 165, 149, 148, 164, 165, 149, 166, 150, 149, 165, 166,
	150, 167, 151, 150, 166, 167, 151, 168, 152, 151, 167, 168,
	152, 169, 153, 152, 168, 169, 153, 170, 154, 153, 169, 170,
	154, 171, 155, 154, 170, 171, 155, 172, 156, 155, 171, 172,
	156, 173, 157, 156, 172, 173, 157, 174, 158, 157, 173, 174,
	158, 175, 159, 158, 174, 175, 159, 160, 144, 159, 175, 160,
	160, 177, 161, 160, 176, 177, 161, 178, 162, 161, 177, 178,
	162, 179, 163, 162, 178, 179, 163, 180, 164, 163, 179, 180,
	164, 181, 165, 164, 180, 181, 165, 182, 166, 165, 181, 182,
	166, 183, 167, 166, 182, 183, 167, 184, 168, 167, 183, 184,
	168, 185, 169, 168, 184, 185, 169, 186, 170, 169, 185, 186,
	170, 187, 171, 170, 186, 187, 171, 188, 172, 171, 187, 188,
	172, 189, 173, 172, 188, 189, 173, 190, 174, 173, 189, 190,
	174, 191, 175, 174, 190, 191, 175, 176, 160, 175, 191, 176,
	176, 193, 177, 176, 192, 193, 177, 194, 178, 177, 193, 194,
	178, 195, 179, 178, 194, 195, 179, 196, 180, 179, 195, 196,
	180, 197, 181, 180, 196, 197, 181, 198, 182, 181, 197, 198,
	182, 199, 183, 182, 198, 199, 183, 200, 184, 183, 199, 200,
	184, 201, 185, 184, 200, 201, 185, 202, 186, 185, 201, 202,
	186, 203, 187, 186, 202, 203, 187, 204, 188, 187, 203, 204,
	188, 205, 189, 188, 204, 205, 189, 206, 190, 189, 205, 206,
	190, 207, 191, 190, 206, 207, 191, 192, 176, 191, 207, 192,
	192, 209, 193, 192, 208, 209, 193, 210, 194, 193, 209, 210,
	194, 211, 195, 194, 210, 211, 195, 212, 196, 195, 211, 212,
	196, 213, 197, 196, 212, 213, 197, 214, 198, 197, 213, 214,
	198, 215, 199, 198, 214, 215, 199, 216, 200, 199, 215, 216,
	200, 217, 201, 200, 216, 217, 201, 218, 202, 201, 217, 218,
	202, 219, 203, 202, 218, 219, 203, 220, 204, 203, 219, 220,
	204, 221, 205, 204, 220, 221, 205, 222, 206, 205, 221, 222,
	206, 223, 207, 206, 222, 223, 207, 208, 192, 207, 223, 208,
	208, 209, 225, 208, 225, 224, 209, 210, 226, 209, 226, 225,
	210, 211, 227, 210, 227, 226, 211, 212, 228, 211, 228, 227,
	212, 213, 229, 212, 229, 228, 213, 214, 230, 213, 230, 229,
	214, 215, 231, 214, 231, 230, 215, 216, 232, 215, 232, 231,
	216, 217, 233, 216, 233, 232, 217, 218, 234, 217, 234, 233,
	218, 219, 235, 218, 235, 234, 219, 220, 236, 219, 236, 235,
	220, 221, 237, 220, 237, 236, 221, 222, 238, 221, 238, 237,
	222, 223, 239, 222, 239, 238, 223, 208, 224, 223, 224, 239,
	224, 241, 225, 224, 240, 241, 225, 242, 226, 225, 241, 242,
	226, 243, 227, 226, 242, 243, 227, 244, 228, 227, 243, 244,
	228, 245, 229, 228, 244, 245, 229, 246, 230, 229, 245, 246,
	230, 247, 231, 230, 246, 247, 231, 248, 232, 231, 247, 248,
	232, 249, 233, 232, 248, 249, 233, 250, 234, 233, 249, 250,
	234, 251, 235, 234, 250, 251, 235, 252, 236, 235, 251, 252,
	236, 253, 237, 236, 252, 253, 237, 254, 238, 237, 253, 254,
	238, 255, 239, 238, 254, 255, 239, 240, 224, 239, 255, 240,
	240, 257, 241, 240, 257, 256, 241, 258, 242, 241, 258, 257,
	242, 259, 243, 242, 259, 258, 243, 260, 244, 243, 260, 259,
	244, 261, 245, 244, 261, 260, 245, 262, 246, 245, 262, 261,
	246, 263, 247, 246, 263, 262, 247, 264, 248, 247, 264, 263,
	248, 265, 249, 248, 265, 264, 249, 266, 250, 249, 266, 265,
	250, 267, 251, 250, 267, 266, 251, 268, 252, 251, 268, 267,
	252, 269, 253, 252, 269, 268, 253, 270, 254, 253, 270, 269,
	254, 271, 255, 254, 271, 270, 255, 256, 240, 255, 256, 271,
	272, 281, 273, 272, 280, 281, 273, 282, 274, 273, 281, 282,
	274, 283, 275, 274, 282, 283, 275, 284, 276, 275, 283, 284,
	276, 285, 277, 276, 284, 285, 277, 286, 278, 277, 285, 286,
	278, 287, 279, 278, 286, 287, 279, 280, 272, 279, 287, 280,
	280, 289, 281, 280, 288, 289, 281, 290, 282, 281, 289, 290,
	282, 291, 283, 282, 290, 291, 283, 292, 284, 283, 291, 292,
	284, 293, 285, 284, 292, 293, 285, 294, 286, 285, 293, 294,
	286, 295, 287, 286, 294, 295, 287, 288, 280, 287, 295, 288,
	288, 297, 289, 288, 296, 297, 289, 298, 290, 289, 297, 298,
	290, 299, 291, 290, 298, 299, 291, 300, 292, 291, 299, 300,
	292, 301, 293, 292, 300, 301, 293, 302, 294, 293, 301, 302,
	294, 303, 295, 294, 302, 303, 295, 296, 288, 295, 303, 296,
	296, 305, 297, 296, 304, 305, 297, 306, 298, 297, 305, 306,
	298, 307, 299, 298, 306, 307, 299, 308, 300, 299, 307, 308,
	300, 309, 301, 300, 308, 309, 301, 310, 302, 301, 309, 310,
	302, 311, 303, 302, 310, 311, 303, 304, 296, 303, 311, 304,
	304, 313, 305, 304, 312, 313, 305, 314, 306, 305, 313, 314,
	306, 315, 307, 306, 314, 315, 307, 316, 308, 307, 315, 316,
	308, 317, 309, 308, 316, 317, 309, 318, 310, 309, 317, 318,
	310, 319, 311, 310, 318, 319, 311, 312, 304, 311, 319, 312,
	312, 321, 313, 312, 320, 321, 313, 322, 314, 313, 321, 322,
	314, 323, 315, 314, 322, 323, 315, 324, 316, 315, 323, 324,
	316, 325, 317, 316, 324, 325, 317, 326, 318, 317, 325, 326,
	318, 327, 319, 318, 326, 327, 319, 320, 312, 319, 327, 320,
	320, 329, 321, 320, 328, 329, 321, 330, 322, 321, 329, 330,
	322, 331, 323, 322, 330, 331, 323, 332, 324, 323, 331, 332,
	324, 333, 325, 324, 332, 333, 325, 334, 326, 325, 333, 334,
	326, 335, 327, 326, 334, 335, 327, 328, 320, 327, 335, 328,
	328, 337, 329, 328, 336, 337, 329, 338, 330, 329, 337, 338,
	330, 339, 331, 330, 338, 339, 331, 340, 332, 331, 339, 340,
	332, 341, 333, 332, 340, 341, 333, 342, 334, 333, 341, 342,
	334, 343, 335, 334, 342, 343, 335, 336, 328, 335, 343, 336,
	344, 353, 345, 344, 352, 353, 345, 354, 346, 345, 353, 354,
	346, 355, 347, 346, 354, 355, 347, 356, 348, 347, 355, 356,
	348, 357, 349, 348, 356, 357, 349, 358, 350, 349, 357, 358,
	350, 359, 351, 350, 358, 359, 351, 352, 344, 351, 359, 352,
	352, 361, 353, 352, 360, 361, 353, 362, 354, 353, 361, 362,
	354, 363, 355, 354, 362, 363, 355, 364, 356, 355, 363, 364,
	356, 365, 357, 356, 364, 365, 357, 366, 358, 357, 365, 366,
	358, 367, 359, 358, 366, 367, 359, 360, 352, 359, 367, 360,
	360, 369, 361, 360, 368, 369, 361, 370, 362, 361, 369, 370,
	362, 371, 363, 362, 370, 371, 363, 372, 364, 363, 371, 372,
	364, 373, 365, 364, 372, 373, 365, 374, 366, 365, 373, 374,
	366, 375, 367, 366, 374, 375, 367, 368, 360, 367, 375, 368,
	368, 377, 369, 368, 376, 377, 369, 378, 370, 369, 377, 378,
	370, 379, 371, 370, 378, 379, 371, 380, 372, 371, 379, 380,
	372, 381, 373, 372, 380, 381, 373, 382, 374, 373, 381, 382,
	374, 383, 375, 374, 382, 383, 375, 376, 368, 375, 383, 376,
	376, 385, 377, 376, 384, 385, 377, 386, 378, 377, 385, 386,
	378, 387, 379, 378, 386, 387, 379, 388, 380, 379, 387, 388,
	380, 389, 381, 380, 388, 389, 381, 390, 382, 381, 389, 390,
	382, 391, 383, 382, 390, 391, 383, 384, 376, 383, 391, 384,
	384, 393, 385, 384, 392, 393, 385, 394, 386, 385, 393, 394,
	386, 395, 387, 386, 394, 395, 387, 396, 388, 387, 395, 396,
	388, 397, 389, 388, 396, 397, 389, 398, 390, 389, 397, 398,
	390, 399, 391, 390, 398, 399, 391, 392, 384, 391, 399, 392,
}

var teapotNormalIndices = [...]uint32{
	0, 1, 17, 0, 16, 17, 1, 2, 18, 1, 17, 18,
	2, 3, 19, 2, 18, 19, 3, 4, 20, 3, 19, 20,
	4, 5, 21, 4, 20, 21, 5, 6, 22, 5, 21, 22,
	6, 7, 23, 6, 22, 23, 7, 8, 24, 7, 23, 24,
	8, 9, 25, 8, 24, 25, 9, 10, 26, 9, 25, 26,
	10, 11, 27, 10, 26, 27, 11, 12, 28, 11, 27, 28,
	12, 13, 29, 12, 28, 29, 13, 14, 30, 13, 29, 30,
	14, 15, 31, 14, 30, 31, 15, 0, 16, 15, 31, 16,
	16, 33, 17, 16, 32, 33, 17, 34, 18, 17, 33, 34,
	18, 35, 19, 18, 34, 35, 19, 36, 20, 19, 35, 36,
	20, 37, 21, 20, 36, 37, 21, 38, 22, 21, 37, 38,
	22, 39, 23, 22, 38, 39, 23, 40, 24, 23, 39, 40,
	24, 41, 25, 24, 40, 41, 25, 42, 26, 25, 41, 42,
	26, 43, 27, 26, 42, 43, 27, 44, 28, 27, 43, 44,
	28, 45, 29, 28, 44, 45, 29, 46, 30, 29, 45, 46,
	30, 47, 31, 30, 46, 47, 31, 32, 16, 31, 47, 32,
	32, 49, 33, 32, 48, 49, 33, 50, 34, 33, 49, 50,
	34, 51, 35, 34, 50, 51, 35, 52, 36, 35, 51, 52,
	36, 53, 37, 36, 52, 53, 37, 54, 38, 37, 53, 54,
	38, 55, 39, 38, 54, 55, 39, 56, 40, 39, 55, 56,
	40, 57, 41, 40, 56, 57, 41, 58, 42, 41, 57, 58,
	42, 59, 43, 42, 58, 59, 43, 60, 44, 43, 59, 60,
	44, 61, 45, 44, 60, 61, 45, 62, 46, 45, 61, 62,
	46, 63, 47, 46, 62, 63, 47, 48, 32, 47, 63, 48,
	48, 65, 49, 48, 64, 65, 49, 66, 50, 49, 65, 66,
	50, 67, 51, 50, 66, 67, 51, 68, 52, 51, 67, 68,
	52, 69, 53, 52, 68, 69, 53, 70, 54, 53, 69, 70,
	54, 71, 55, 54, 70, 71, 55, 72, 56, 55, 71, 72,
	56, 73, 57, 56, 72, 73, 57, 74, 58, 57, 73, 74,
	58, 75, 59, 58, 74, 75, 59, 76, 60, 59, 75, 76,
	60, 77, 61, 60, 76, 77, 61, 78, 62, 61, 77, 78,
	62, 79, 63, 62, 78, 79, 63, 64, 48, 63, 79, 64,
	64, 81, 65, 64, 80, 81, 65, 82, 66, 65, 81, 82,
	66, 83, 67, 66, 82, 83, 67, 84, 68, 67, 83, 84,
	68, 85, 69, 68, 84, 85, 69, 86, 70, 69, 85, 86,
	70, 87, 71, 70, 86, 87, 71, 88, 72, 71, 87, 88,
	72, 89, 73, 72, 88, 89, 73, 90, 74, 73, 89, 90,
	74, 91, 75, 74, 90, 91, 75, 92, 76, 75, 91, 92,
	76, 93, 77, 76, 92, 93, 77, 94, 78, 77, 93, 94,
	78, 95, 79, 78, 94, 95, 79, 80, 64, 79, 95, 80,
	80, 97, 81, 80, 96, 97, 81, 98, 82, 81, 97, 98,
	82, 99, 83, 82, 98, 99, 83, 100, 84, 83, 99, 100,
	84, 101, 85, 84, 100, 101, 85, 102, 86, 85, 101, 102,
	86, 103, 87, 86, 102, 103, 87, 104, 88, 87, 103, 104,
	88, 105, 89, 88, 104, 105, 89, 106, 90, 89, 105, 106,
	90, 107, 91, 90, 106, 107, 91, 108, 92, 91, 107, 108,
	92, 109, 93, 92, 108, 109, 93, 110, 94, 93, 109, 110,
	94, 111, 95, 94, 110, 111, 95, 96, 80, 95, 111, 96,
	96, 113, 97, 96, 112, 113, 97, 114, 98, 97, 113, 114,
	98, 115, 99, 98, 114, 115, 99, 116, 100, 99, 115, 116,
	100, 117, 101, 100, 116, 117, 101, 118, 102, 101, 117, 118,
	102, 119, 103, 102, 118, 119, 103, 120, 104, 103, 119, 120,
	104, 121, 105, 104, 120, 121, 105, 122, 106, 105, 121, 122,
	106, 123, 107, 106, 122, 123, 107, 124, 108, 107, 123, 124,
	108, 125, 109, 108, 124, 125, 109, 126, 110, 109, 125, 126,
	110, 127, 111, 110, 126, 127, 111, 112, 96, 111, 127, 112,
	112, 129, 113, 112, 128, 129, 113, 130, 114, 113, 129, 130,
	114, 131, 115, 114, 130, 131, 115, 132, 116, 115, 131, 132,
	116, 133, 117, 116, 132, 133, 117, 134, 118, 117, 133, 134,
	118, 135, 119, 118, 134, 135, 119, 136, 120, 119, 135, 136,
	120, 137, 121, 120, 136, 137, 121, 138, 122, 121, 137, 138,
	122, 139, 123, 122, 138, 139, 123, 140, 124, 123, 139, 140,
	124, 141, 125, 124, 140, 141, 125, 142, 126, 125, 141, 142,
	126, 143, 127, 126, 142, 143, 127, 128, 112, 127, 143, 128,
	144, 161, 145, 144, 160, 161, 145, 162, 146, 145, 161, 162,
	146, 163, 147, 146, 162, 163, 147, 164, 148, 147, 163, 164,
	148, 165, 149, 148, 164, 165, 149, 166, 150, 149, 165, 166,
	150, 167, 151, 150, 166, 167, 151, 168, 152, 151, 167, 168,
	152, 169, 153, 152, 168, 169, 153, 170, 154, 153, 169, 170,
	154, 171, 155, 154, 170, 171, 155, 172, 156, 155, 171, 172,
	156, 173, 157, 156, 172, 173, 157, 174, 158, 157, 173, 174,
	158, 175, 159, 158, 174, 175, 159, 160, 144, 159, 175, 160,
	160, 177, 161, 160, 176, 177, 161, 178, 162, 161, 177, 178,
	162, 179, 163, 162, 178, 179, 163, 180, 164, 163, 179, 180,
	164, 181, 165, 164, 180, 181, 165, 182, 166, 165, 181, 182,
	166, 183, 167, 166, 182, 183, 167, 184, 168, 167, 183, 184,
	168, 185, 169, 168, 184, 185, 169, 186, 170, 169, 185, 186,
	170, 187, 171, 170, 186, 187, 171, 188, 172, 171, 187, 188,
	172, 189, 173, 172, 188, 189, 173, 190, 174, 173, 189, 190,
	174, 191, 175, 174, 190, 191, 175, 176, 160, 175, 191, 176,
	176, 193, 177, 176, 192, 193, 177, 194, 178, 177, 193, 194,
	178, 195, 179, 178, 194, 195, 179, 196, 180, 179, 195, 196,
	180, 197, 181, 180, 196, 197, 181, 198, 182, 181, 197, 198,
	182, 199, 183, 182, 198, 199, 183, 200, 184, 183, 199, 200,
	184, 201, 185, 184, 200, 201, 185, 202, 186, 185, 201, 202,
	186, 203, 187, 186, 202, 203, 187, 204, 188, 187, 203, 204,
	188, 205, 189, 188, 204, 205, 189, 206, 190, 189, 205, 206,
	190, 207, 191, 190, 206, 207, 191, 192, 176, 191, 207, 192,
	192, 209, 193, 192, 208, 209, 193, 210, 194, 193, 209, 210,
	194, 211, 195, 194, 210, 211, 195, 212, 196, 195, 211, 212,
	196, 213, 197, 196, 212, 213, 197, 214, 198, 197, 213, 214,
	198, 215, 199, 198, 214, 215, 199, 216, 200, 199, 215, 216,
	200, 217, 201, 200, 216, 217, 201, 218, 202, 201, 217, 218,
	202, 219, 203, 202, 218, 219, 203, 220, 204, 203, 219, 220,
	204, 221, 205, 204, 220, 221, 205, 222, 206, 205, 221, 222,
	206, 223, 207, 206, 222, 223, 207, 208, 192, 207, 223, 208,
	208, 209, 225, 208, 225, 224, 209, 210, 226, 209, 226, 225,
	210, 211, 227, 210, 227, 226, 211, 212, 228, 211, 228, 227,
	212, 213, 229, 212, 229, 228, 213, 214, 230, 213, 230, 229,
	214, 215, 231, 214, 231, 230, 215, 216, 232, 215, 232, 231,
	216, 217, 233, 216, 233, 232, 217, 218, 234, 217, 234, 233,
	218, 219, 235, 218, 235, 234, 219, 220, 236, 219, 236, 235,
	220, 221, 237, 220, 237, 236, 221, 222, 238, 221, 238, 237,
	222, 223, 239, 222, 239, 238, 223, 208, 224, 223, 224, 239,
	224, 241, 225, 224, 240, 241, 225, 242, 226, 225, 241, 242,
	226, 243, 227, 226, 242, 243, 227, 244, 228, 227, 243, 244,
	228, 245, 229, 228, 244, 245, 229, 246, 230, 229, 245, 246,
	230, 247, 231, 230, 246, 247, 231, 248, 232, 231, 247, 248,
	232, 249, 233, 232, 248, 249, 233, 250, 234, 233, 249, 250,
	234, 251, 235, 234, 250, 251, 235, 252, 236, 235, 251, 252,
	236, 253, 237, 236, 252, 253, 237, 254, 238, 237, 253, 254,
	238, 255, 239, 238, 254, 255, 239, 240, 224, 239, 255, 240,
	240, 257, 241, 240, 257, 256, 241, 258, 242, 241, 258, 257,
	242, 259, 243, 242, 259, 258, 243, 260, 244, 243, 260, 259,
	244, 261, 245, 244, 261, 260, 245, 262, 246, 245, 262, 261,
	246, 263, 247, 246, 263, 262, 247, 264, 248, 247, 264, 263,
	248, 265, 249, 248, 265, 264, 249, 266, 250, 249, 266, 265,
	250, 267, 251, 250, 267, 266, 251, 268, 252, 251, 268, 267,
	252, 269, 253, 252, 269, 268, 253, 270, 254, 253, 270, 269,
	254, 271, 255, 254, 271, 270, 255, 256, 240, 255, 256, 271,
	272, 281, 273, 272, 280, 281, 273, 282, 274, 273, 281, 282,
	274, 283, 275, 274, 282, 283, 275, 284, 276, 275, 283, 284,
	276, 285, 277, 276, 284, 285, 277, 286, 278, 277, 285, 286,
	278, 287, 279, 278, 286, 287, 279, 280, 272, 279, 287, 280,
	280, 289, 281, 280, 288, 289, 281, 290, 282, 281, 289, 290,
	282, 291, 283, 282, 290, 291, 283, 292, 284, 283, 291, 292,
	284, 293, 285, 284, 292, 293, 285, 294, 286, 285, 293, 294,
	286, 295, 287, 286, 294, 295, 287, 288, 280, 287, 295, 288,
	288, 297, 289, 288, 296, 297, 289, 298, 290, 289, 297, 298,
	290, 299, 291, 290, 298, 299, 291, 300, 292, 291, 299, 300,
	292, 301, 293, 292, 300, 301, 293, 302, 294, 293, 301, 302,
	294, 303, 295, 294, 302, 303, 295, 296, 288, 295, 303, 296,
	296, 305, 297, 296, 304, 305, 297, 306, 298, 297, 305, 306,
	298, 307, 299, 298, 306, 307, 299, 308, 300, 299, 307, 308,
	300, 309, 301, 300, 308, 309, 301, 310, 302, 301, 309, 310,
	302, 311, 303, 302, 310, 311, 303, 304, 296, 303, 311, 304,
	304, 313, 305, 304, 312, 313, 305, 314, 306, 305, 313, 314,
	306, 315, 307, 306, 314, 315, 307, 316, 308, 307, 315, 316,
	308, 317, 309, 308, 316, 317, 309, 318, 310, 309, 317, 318,
	310, 319, 311, 310, 318, 319, 311, 312, 304, 311, 319, 312,
	312, 321, 313, 312, 320, 321, 313, 322, 314, 313, 321, 322,
	314, 323, 315, 314, 322, 323, 315, 324, 316, 315, 323, 324,
	316, 325, 317, 316, 324, 325, 317, 326, 318, 317, 325, 326,
	318, 327, 319, 318, 326, 327, 319, 320, 312, 319, 327, 320,
	320, 329, 321, 320, 328, 329, 321, 330, 322, 321, 329, 330,
	322, 331, 323, 322, 330, 331, 323, 332, 324, 323, 331, 332,
	324, 333, 325, 324, 332, 333, 325, 334, 326, 325, 333, 334,
	326, 335, 327, 326, 334, 335, 327, 328, 320, 327, 335, 328,
	328, 337, 329, 328, 336, 337, 329, 338, 330, 329, 337, 338,
	330, 339, 331, 330, 338, 339, 331, 340, 332, 331, 339, 340,
	332, 341, 333, 332, 340, 341, 333, 342, 334, 333, 341, 342,
	334, 343, 335, 334, 342, 343, 335, 336, 328, 335, 343, 336,
	344, 353, 345, 344, 352, 353, 345, 354, 346, 345, 353, 354,
	346, 355, 347, 346, 354, 355, 347, 356, 348, 347, 355, 356,
	348, 357, 349, 348, 356, 357, 349, 358, 350, 349, 357, 358,
	350, 359, 351, 350, 358, 359, 351, 352, 344, 351, 359, 352,
	352, 361, 353, 352, 360, 361, 353, 362, 354, 353, 361, 362,
	354, 363, 355, 354, 362, 363, 355, 364, 356, 355, 363, 364,
	356, 365, 357, 356, 364, 365, 357, 366, 358, 357, 365, 366,
	358, 367, 359, 358, 366, 367, 359, 360, 352, 359, 367, 360,
	360, 369, 361, 360, 368, 369, 361, 370, 362, 361, 369, 370,
	362, 371, 363, 362, 370, 371, 363, 372, 364, 363, 371, 372,
	364, 373, 365, 364, 372, 373, 365, 374, 366, 365, 373, 374,
	366, 375, 367, 366, 374, 375, 367, 368, 360, 367, 375, 368,
	368, 377, 369, 368, 376, 377, 369, 378, 370, 369, 377, 378,
	370, 379, 371, 370, 378, 379, 371, 380, 372, 371, 379, 380,
	372, 381, 373, 372, 380, 381, 373, 382, 374, 373, 381, 382,
	374, 383, 375, 374, 382, 383, 375, 376, 368, 375, 383, 376,
	376, 385, 377, 376, 384, 385, 377, 386, 378, 377, 385, 386,
	378, 387, 379, 378, 386, 387, 379, 388, 380, 379, 387, 388,
	380, 389, 381, 380, 388, 389, 381, 390, 382, 381, 389, 390,
	382, 391, 383, 382, 390, 391, 383, 384, 376, 383, 391, 384,
	384, 393, 385, 384, 392, 393, 385, 394, 386, 385, 393, 394,
	386, 395, 387, 386, 394, 395, 387, 396, 388, 387, 395, 396,
	388, 397, 389, 388, 396, 397, 389, 398, 390, 389, 397, 398,
	390, 399, 391, 390, 398, 399, 391, 392, 384, 391, 399, 392,
}
