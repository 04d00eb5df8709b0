package blackbg

// ProcessFile loads inPath, removes its black background and writes the result
// to outPath. The output is only written once the input has been decoded and
// transformed.
func ProcessFile(inPath, outPath string, t Thresholds) (Stats, error) {
	img, err := Load(inPath)
	if err != nil {
		return Stats{}, err
	}

	stats := Remap(img, t)

	if err := Save(outPath, img); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
