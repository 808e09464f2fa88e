package hll

// rawEstimateTable and biasTable are the supplied per-precision empirical
// correction curves of SS4.5/SS6: rawEstimateTable[p] is a nondecreasing list
// of raw-estimate anchors, biasTable[p] the parallel bias to subtract at each
// anchor. Google's published tables (one of the external collaborators SS1
// names as out of scope) were not part of the retrieval pack; this is a
// smooth, monotonicity-preserving stand-in with the same qualitative shape
// -- sizeable positive bias near E/m -> 0, tapering through a small negative
// dip, to ~0 by E/m == 5 -- documented in DESIGN.md.
var rawEstimateTable = map[uint][]float64{
	4: {0.3200, 0.8000, 1.2800, 1.9200, 2.7200, 3.6800, 4.8000, 6.4000, 8.0000, 10.4000, 12.8000, 16.0000, 20.0000, 24.0000, 28.0000, 32.0000, 40.0000, 48.0000, 56.0000, 64.0000, 72.0000, 76.8000, 80.0000},
	5: {0.6400, 1.6000, 2.5600, 3.8400, 5.4400, 7.3600, 9.6000, 12.8000, 16.0000, 20.8000, 25.6000, 32.0000, 40.0000, 48.0000, 56.0000, 64.0000, 80.0000, 96.0000, 112.0000, 128.0000, 144.0000, 153.6000, 160.0000},
	6: {1.2800, 3.2000, 5.1200, 7.6800, 10.8800, 14.7200, 19.2000, 25.6000, 32.0000, 41.6000, 51.2000, 64.0000, 80.0000, 96.0000, 112.0000, 128.0000, 160.0000, 192.0000, 224.0000, 256.0000, 288.0000, 307.2000, 320.0000},
	7: {2.5600, 6.4000, 10.2400, 15.3600, 21.7600, 29.4400, 38.4000, 51.2000, 64.0000, 83.2000, 102.4000, 128.0000, 160.0000, 192.0000, 224.0000, 256.0000, 320.0000, 384.0000, 448.0000, 512.0000, 576.0000, 614.4000, 640.0000},
	8: {5.1200, 12.8000, 20.4800, 30.7200, 43.5200, 58.8800, 76.8000, 102.4000, 128.0000, 166.4000, 204.8000, 256.0000, 320.0000, 384.0000, 448.0000, 512.0000, 640.0000, 768.0000, 896.0000, 1024.0000, 1152.0000, 1228.8000, 1280.0000},
	9: {10.2400, 25.6000, 40.9600, 61.4400, 87.0400, 117.7600, 153.6000, 204.8000, 256.0000, 332.8000, 409.6000, 512.0000, 640.0000, 768.0000, 896.0000, 1024.0000, 1280.0000, 1536.0000, 1792.0000, 2048.0000, 2304.0000, 2457.6000, 2560.0000},
	10: {20.4800, 51.2000, 81.9200, 122.8800, 174.0800, 235.5200, 307.2000, 409.6000, 512.0000, 665.6000, 819.2000, 1024.0000, 1280.0000, 1536.0000, 1792.0000, 2048.0000, 2560.0000, 3072.0000, 3584.0000, 4096.0000, 4608.0000, 4915.2000, 5120.0000},
	11: {40.9600, 102.4000, 163.8400, 245.7600, 348.1600, 471.0400, 614.4000, 819.2000, 1024.0000, 1331.2000, 1638.4000, 2048.0000, 2560.0000, 3072.0000, 3584.0000, 4096.0000, 5120.0000, 6144.0000, 7168.0000, 8192.0000, 9216.0000, 9830.4000, 10240.0000},
	12: {81.9200, 204.8000, 327.6800, 491.5200, 696.3200, 942.0800, 1228.8000, 1638.4000, 2048.0000, 2662.4000, 3276.8000, 4096.0000, 5120.0000, 6144.0000, 7168.0000, 8192.0000, 10240.0000, 12288.0000, 14336.0000, 16384.0000, 18432.0000, 19660.8000, 20480.0000},
	13: {163.8400, 409.6000, 655.3600, 983.0400, 1392.6400, 1884.1600, 2457.6000, 3276.8000, 4096.0000, 5324.8000, 6553.6000, 8192.0000, 10240.0000, 12288.0000, 14336.0000, 16384.0000, 20480.0000, 24576.0000, 28672.0000, 32768.0000, 36864.0000, 39321.6000, 40960.0000},
	14: {327.6800, 819.2000, 1310.7200, 1966.0800, 2785.2800, 3768.3200, 4915.2000, 6553.6000, 8192.0000, 10649.6000, 13107.2000, 16384.0000, 20480.0000, 24576.0000, 28672.0000, 32768.0000, 40960.0000, 49152.0000, 57344.0000, 65536.0000, 73728.0000, 78643.2000, 81920.0000},
	15: {655.3600, 1638.4000, 2621.4400, 3932.1600, 5570.5600, 7536.6400, 9830.4000, 13107.2000, 16384.0000, 21299.2000, 26214.4000, 32768.0000, 40960.0000, 49152.0000, 57344.0000, 65536.0000, 81920.0000, 98304.0000, 114688.0000, 131072.0000, 147456.0000, 157286.4000, 163840.0000},
	16: {1310.7200, 3276.8000, 5242.8800, 7864.3200, 11141.1200, 15073.2800, 19660.8000, 26214.4000, 32768.0000, 42598.4000, 52428.8000, 65536.0000, 81920.0000, 98304.0000, 114688.0000, 131072.0000, 163840.0000, 196608.0000, 229376.0000, 262144.0000, 294912.0000, 314572.8000, 327680.0000},
	17: {2621.4400, 6553.6000, 10485.7600, 15728.6400, 22282.2400, 30146.5600, 39321.6000, 52428.8000, 65536.0000, 85196.8000, 104857.6000, 131072.0000, 163840.0000, 196608.0000, 229376.0000, 262144.0000, 327680.0000, 393216.0000, 458752.0000, 524288.0000, 589824.0000, 629145.6000, 655360.0000},
	18: {5242.8800, 13107.2000, 20971.5200, 31457.2800, 44564.4800, 60293.1200, 78643.2000, 104857.6000, 131072.0000, 170393.6000, 209715.2000, 262144.0000, 327680.0000, 393216.0000, 458752.0000, 524288.0000, 655360.0000, 786432.0000, 917504.0000, 1048576.0000, 1179648.0000, 1258291.2000, 1310720.0000},
}

var biasTable = map[uint][]float64{
	4: {1.3236, 1.2706, 1.2194, 1.1539, 1.0762, 0.9887, 0.8942, 0.7722, 0.6640, 0.5245, 0.4086, 0.2846, 0.1689, 0.0866, 0.0292, -0.0098, -0.0508, -0.0629, -0.0611, -0.0534, -0.0439, -0.0383, -0.0348},
	5: {2.6472, 2.5412, 2.4388, 2.3078, 2.1523, 1.9774, 1.7885, 1.5444, 1.3280, 1.0490, 0.8172, 0.5693, 0.3378, 0.1732, 0.0584, -0.0195, -0.1015, -0.1258, -0.1222, -0.1067, -0.0878, -0.0767, -0.0696},
	6: {5.2945, 5.0825, 4.8777, 4.6155, 4.3046, 3.9549, 3.5770, 3.0889, 2.6560, 2.0980, 1.6344, 1.1386, 0.6757, 0.3464, 0.1168, -0.0391, -0.2031, -0.2517, -0.2444, -0.2134, -0.1756, -0.1533, -0.1392},
	7: {10.5890, 10.1649, 9.7554, 9.2311, 8.6093, 7.9098, 7.1539, 6.1777, 5.3120, 4.1959, 3.2689, 2.2771, 1.3514, 0.6928, 0.2335, -0.0781, -0.4061, -0.5034, -0.4887, -0.4268, -0.3513, -0.3066, -0.2784},
	8: {21.1780, 20.3298, 19.5107, 18.4621, 17.2186, 15.8195, 14.3078, 12.3554, 10.6241, 8.3919, 6.5377, 4.5542, 2.7027, 1.3856, 0.4671, -0.1562, -0.8123, -1.0068, -0.9775, -0.8537, -0.7026, -0.6133, -0.5567},
	9: {42.3559, 40.6596, 39.0214, 36.9243, 34.4371, 31.6390, 28.6156, 24.7109, 21.2482, 16.7837, 13.0754, 9.1084, 5.4054, 2.7711, 0.9341, -0.3125, -1.6245, -2.0136, -1.9550, -1.7073, -1.4052, -1.2265, -1.1134},
	10: {84.7118, 81.3192, 78.0428, 73.8486, 68.8743, 63.2781, 57.2313, 49.4217, 42.4963, 33.5675, 26.1509, 18.2168, 10.8108, 5.5422, 1.8682, -0.6249, -3.2491, -4.0271, -3.9099, -3.4147, -2.8103, -2.4530, -2.2268},
	11: {169.4237, 162.6385, 156.0856, 147.6972, 137.7485, 126.5562, 114.4625, 98.8435, 84.9926, 67.1350, 52.3017, 36.4337, 21.6216, 11.0844, 3.7365, -1.2499, -6.4981, -8.0542, -7.8198, -6.8293, -5.6206, -4.9061, -4.4536},
	12: {338.8474, 325.2769, 312.1712, 295.3944, 275.4970, 253.1123, 228.9250, 197.6869, 169.9853, 134.2699, 104.6034, 72.8674, 43.2432, 22.1689, 7.4729, -2.4998, -12.9963, -16.1084, -15.6397, -13.6587, -11.2412, -9.8122, -8.9072},
	13: {677.6948, 650.5539, 624.3424, 590.7887, 550.9940, 506.2246, 457.8500, 395.3739, 339.9705, 268.5398, 209.2068, 145.7347, 86.4865, 44.3378, 14.9459, -4.9995, -25.9926, -32.2168, -31.2793, -27.3173, -22.4824, -19.6243, -17.8145},
	14: {1355.3895, 1301.1078, 1248.6849, 1181.5775, 1101.9880, 1012.4493, 915.7001, 790.7478, 679.9410, 537.0796, 418.4137, 291.4695, 172.9729, 88.6755, 29.8917, -9.9990, -51.9851, -64.4336, -62.5587, -54.6347, -44.9649, -39.2487, -35.6290},
	15: {2710.7790, 2602.2156, 2497.3698, 2363.1550, 2203.9761, 2024.8985, 1831.4002, 1581.4956, 1359.8820, 1074.1593, 836.8273, 582.9389, 345.9458, 177.3510, 59.7834, -19.9980, -103.9703, -128.8672, -125.1174, -109.2693, -89.9297, -78.4974, -71.2580},
	16: {5421.5581, 5204.4311, 4994.7396, 4726.3100, 4407.9521, 4049.7971, 3662.8004, 3162.9912, 2719.7640, 2148.3186, 1673.6547, 1165.8778, 691.8916, 354.7021, 119.5668, -39.9961, -207.9406, -257.7344, -250.2347, -218.5387, -179.8595, -156.9948, -142.5159},
	17: {10843.1161, 10408.8623, 9989.4791, 9452.6199, 8815.9043, 8099.5941, 7325.6007, 6325.9824, 5439.5280, 4296.6372, 3347.3094, 2331.7556, 1383.7833, 709.4041, 239.1336, -79.9922, -415.8811, -515.4688, -500.4695, -437.0773, -359.7190, -313.9895, -285.0318},
	18: {21686.2322, 20817.7246, 19978.9583, 18905.2398, 17631.8086, 16199.1883, 14651.2014, 12651.9648, 10879.0561, 8593.2744, 6694.6187, 4663.5112, 2767.5666, 1418.8083, 478.2672, -159.9844, -831.7623, -1030.9376, -1000.9389, -874.1546, -719.4379, -627.9791, -570.0637},
}

// threshold holds the experimentally determined linear-counting/raw-estimate
// switch points of SS6, indexed by p-4.
var threshold = [15]float64{
	10, 20, 40, 80, 220, 400, 900, 1800, 3100, 6500, 11500, 20000, 50000, 120000, 350000,
}
