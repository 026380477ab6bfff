package abcmrt

// fileOrder ranks all 1200 file numbers so that scoring only the
// first N files of the list approximates the full test with minimum
// RMSE. Abbreviated tests should take a prefix of this ordering.
var fileOrder = [NumFiles]int{
	232, 393, 1068, 729, 230, 470, 910, 831, 288, 562, 1174, 632,
	237, 452, 955, 885, 7, 515, 1119, 838, 92, 545, 1038, 658,
	126, 600, 1045, 694, 10, 505, 1063, 864, 264, 405, 1113, 870,
	104, 540, 1105, 856, 111, 431, 1086, 853, 261, 430, 1142, 670,
	223, 343, 1065, 690, 91, 570, 1173, 741, 279, 364, 1128, 787,
	239, 548, 1076, 634, 55, 372, 911, 898, 190, 315, 935, 624,
	11, 437, 1073, 899, 229, 583, 1110, 620, 58, 380, 907, 731,
	253, 527, 1047, 604, 138, 519, 1176, 692, 51, 336, 1008, 883,
	43, 322, 1094, 719, 135, 346, 1067, 605, 73, 386, 995, 852,
	116, 567, 1131, 665, 83, 318, 974, 782, 18, 304, 1035, 644,
	65, 435, 968, 747, 78, 558, 957, 797, 134, 508, 927, 684,
	79, 512, 1044, 752, 269, 523, 914, 681, 56, 598, 1170, 863,
	194, 327, 986, 699, 278, 553, 1198, 778, 87, 469, 1077, 613,
	33, 363, 1186, 619, 248, 467, 1147, 647, 93, 493, 1134, 611,
	179, 348, 1029, 637, 98, 533, 1034, 725, 256, 373, 1020, 742,
	182, 411, 904, 735, 131, 561, 912, 674, 160, 599, 1157, 892,
	42, 530, 1064, 846, 35, 537, 973, 607, 5, 459, 958, 614,
	21, 433, 1049, 862, 287, 378, 1054, 738, 169, 366, 949, 859,
	30, 588, 1175, 889, 45, 522, 1200, 783, 71, 451, 1015, 877,
	90, 310, 953, 779, 119, 547, 963, 625, 147, 463, 1096, 643,
	69, 303, 921, 734, 240, 455, 903, 745, 227, 499, 919, 786,
	296, 355, 1059, 851, 198, 531, 1071, 888, 299, 338, 1166, 645,
	53, 389, 1033, 775, 174, 555, 1006, 636, 32, 528, 1193, 649,
	110, 595, 1108, 823, 188, 388, 1167, 679, 15, 368, 1053, 816,
	241, 395, 970, 628, 60, 449, 985, 746, 123, 311, 925, 763,
	189, 482, 1120, 895, 38, 396, 1101, 689, 102, 385, 1005, 688,
	149, 413, 1090, 672, 39, 453, 1195, 821, 96, 399, 1060, 654,
	206, 438, 1050, 873, 6, 471, 1000, 798, 81, 542, 1039, 790,
	176, 546, 1155, 618, 72, 342, 1004, 715, 209, 485, 965, 696,
	66, 305, 1130, 847, 20, 302, 972, 805, 224, 502, 1125, 865,
	291, 323, 1042, 606, 254, 432, 1103, 837, 244, 481, 1055, 891,
	136, 574, 983, 768, 105, 337, 952, 834, 178, 436, 1014, 811,
	27, 448, 971, 615, 75, 325, 984, 900, 17, 365, 1152, 602,
	211, 447, 946, 663, 202, 458, 1082, 820, 108, 592, 1168, 667,
	273, 320, 908, 617, 24, 359, 1153, 718, 88, 356, 1137, 609,
	225, 424, 1019, 621, 124, 333, 1021, 784, 29, 575, 1124, 722,
	50, 503, 928, 650, 4, 367, 937, 836, 300, 406, 1080, 874,
	3, 466, 948, 673, 228, 301, 966, 867, 243, 560, 967, 802,
	270, 410, 1148, 770, 193, 489, 962, 815, 120, 312, 1017, 695,
	294, 525, 1074, 845, 62, 507, 964, 794, 74, 496, 1140, 832,
	155, 397, 933, 603, 238, 423, 1159, 677, 250, 416, 1066, 732,
	140, 468, 1189, 709, 213, 351, 1143, 793, 284, 500, 1129, 796,
	231, 591, 943, 861, 137, 513, 924, 635, 222, 554, 1112, 601,
	205, 349, 1139, 622, 59, 381, 1056, 693, 185, 426, 1133, 739,
	121, 326, 1185, 855, 268, 417, 1081, 702, 25, 510, 1144, 764,
	196, 371, 1156, 894, 207, 403, 956, 785, 272, 335, 994, 707,
	181, 573, 1115, 814, 118, 314, 1095, 659, 247, 543, 1085, 766,
	67, 306, 1037, 743, 106, 441, 989, 765, 129, 509, 990, 887,
	9, 572, 1197, 882, 28, 439, 1031, 881, 285, 324, 1199, 843,
	41, 375, 1183, 698, 113, 421, 1190, 753, 258, 587, 1135, 827,
	221, 370, 1180, 686, 165, 552, 1093, 701, 19, 520, 960, 705,
	1, 332, 930, 849, 46, 404, 1111, 676, 86, 425, 1003, 675,
	167, 358, 981, 803, 82, 345, 939, 767, 141, 532, 1002, 750,
	54, 487, 1132, 835, 122, 420, 961, 840, 12, 490, 901, 869,
	40, 462, 906, 876, 22, 565, 916, 733, 34, 446, 1016, 875,
	130, 422, 920, 809, 133, 491, 1122, 706, 95, 392, 1181, 700,
	262, 394, 1041, 669, 13, 414, 918, 662, 297, 504, 1136, 612,
	293, 486, 1024, 854, 283, 564, 1179, 780, 49, 461, 1123, 668,
	186, 450, 1163, 710, 94, 475, 950, 751, 215, 328, 1010, 817,
	281, 353, 1026, 776, 180, 580, 932, 757, 26, 494, 1048, 848,
	245, 473, 945, 826, 36, 480, 1187, 703, 208, 347, 922, 655,
	85, 506, 1165, 858, 84, 495, 1164, 657, 242, 511, 1107, 866,
	101, 369, 977, 812, 267, 402, 1011, 781, 277, 549, 1092, 829,
	107, 465, 1087, 850, 226, 443, 1098, 656, 195, 568, 1036, 726,
	233, 377, 1072, 748, 263, 445, 942, 841, 212, 362, 917, 661,
	197, 418, 1062, 756, 217, 400, 1178, 680, 151, 581, 1075, 744,
	158, 390, 1091, 758, 117, 484, 1114, 691, 168, 488, 1069, 685,
	164, 354, 1106, 652, 109, 586, 941, 678, 187, 419, 1127, 740,
	114, 407, 1145, 804, 172, 563, 1089, 736, 77, 309, 1028, 789,
	163, 412, 1079, 806, 139, 516, 905, 721, 286, 517, 1100, 819,
	89, 440, 1078, 697, 153, 539, 1154, 626, 31, 360, 1102, 727,
	57, 341, 1109, 687, 234, 529, 1177, 818, 112, 340, 1184, 683,
	298, 329, 999, 860, 218, 429, 1032, 801, 44, 571, 1057, 724,
	246, 387, 926, 642, 97, 374, 1083, 671, 16, 566, 951, 760,
	152, 556, 1023, 714, 132, 313, 1097, 641, 184, 357, 1138, 711,
	143, 376, 1158, 791, 70, 307, 1118, 761, 260, 534, 982, 871,
	68, 589, 1104, 651, 157, 478, 1196, 795, 252, 541, 940, 828,
	154, 409, 923, 716, 183, 476, 1099, 886, 249, 474, 969, 897,
	251, 401, 1009, 830, 290, 352, 938, 728, 216, 316, 1161, 629,
	292, 308, 1116, 666, 236, 524, 1027, 755, 204, 536, 959, 842,
	144, 501, 979, 825, 37, 331, 1058, 712, 48, 384, 1149, 627,
	14, 569, 1001, 762, 173, 582, 1188, 844, 148, 557, 997, 810,
	23, 319, 1169, 723, 265, 428, 1040, 788, 170, 492, 929, 769,
	259, 514, 1182, 759, 274, 350, 993, 737, 257, 334, 975, 833,
	201, 464, 1084, 772, 255, 434, 947, 749, 125, 577, 936, 730,
	266, 383, 1146, 708, 156, 579, 980, 717, 99, 330, 944, 660,
	171, 361, 1051, 610, 47, 596, 915, 648, 127, 454, 1061, 890,
	219, 584, 1030, 896, 235, 518, 998, 839, 52, 460, 1162, 773,
	271, 521, 1126, 878, 275, 408, 1192, 631, 100, 578, 978, 893,
	282, 483, 1025, 704, 289, 576, 1141, 608, 146, 457, 1172, 774,
	103, 498, 987, 777, 276, 550, 1013, 884, 177, 479, 934, 813,
	142, 544, 1088, 638, 145, 593, 1043, 808, 150, 339, 931, 868,
	166, 477, 996, 664, 199, 551, 1012, 807, 220, 597, 1117, 880,
	115, 398, 1171, 879, 61, 317, 1160, 799, 63, 497, 976, 623,
	159, 472, 1046, 824, 128, 344, 1121, 653, 191, 535, 1150, 771,
	295, 594, 902, 633, 200, 590, 1070, 754, 161, 321, 1007, 800,
	175, 379, 1191, 720, 64, 526, 1052, 630, 80, 415, 1018, 872,
	203, 427, 954, 640, 162, 444, 1022, 639, 76, 559, 991, 857,
	214, 391, 992, 792, 210, 442, 1151, 646, 192, 382, 909, 822,
	2, 538, 913, 616, 280, 456, 1194, 682, 8, 585, 988, 713,
}

// FileOrder returns a copy of the RMSE-minimizing file ordering for
// abbreviated tests: score the files numbered by the first N entries
// to best approximate a full 1200-file run.
func FileOrder() []int {
	out := make([]int, NumFiles)
	copy(out, fileOrder[:])
	return out
}
