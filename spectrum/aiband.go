package spectrum

// NumBands is the number of articulation index bands.
//
// Bands 1-20 follow the AI band table on page 38 of S. Quackenbush,
// T. Barnwell and M. Clements, "Objective measures of speech quality,"
// Prentice Hall, 1988. Band 21 collects everything above band 20 up to
// 20 kHz.
const NumBands = 21

// aiBandBins maps each AI band to an inclusive range of FFT bins.
// Bin indices are zero based into the length-512 FFT at 48 kHz, so one
// bin spans 93.75 Hz. Only bins 3..214 carry band energy; bins below
// ~280 Hz and above ~20 kHz are unused.
var aiBandBins = [NumBands][2]int{
	{3, 3},    // band 1
	{4, 5},    // band 2
	{6, 6},    // band 3
	{7, 8},    // band 4
	{9, 10},   // band 5
	{11, 12},  // band 6
	{13, 14},  // band 7
	{15, 16},  // band 8
	{17, 18},  // band 9
	{19, 20},  // band 10
	{21, 22},  // band 11
	{23, 25},  // band 12
	{26, 27},  // band 13
	{28, 30},  // band 14
	{31, 34},  // band 15
	{35, 39},  // band 16
	{40, 44},  // band 17
	{45, 51},  // band 18
	{52, 61},  // band 19
	{62, 75},  // band 20
	{76, 214}, // band 21: 7 kHz - 20 kHz
}

// AlignBands are the band indices used for time alignment. They cover
// FFT bins 6-8 (roughly 560-840 Hz), where speech energy is reliably
// present at every bandwidth.
var AlignBands = []int{2, 3}

// binsPerBand[b] is the number of FFT bins aggregated into band b.
var binsPerBand [NumBands]int

func init() {
	for b, r := range aiBandBins {
		binsPerBand[b] = r[1] - r[0] + 1
	}
}

// BandBins returns the inclusive FFT bin range for band b.
func BandBins(b int) (first, last int) {
	r := aiBandBins[b]
	return r[0], r[1]
}
