package morph

import "github.com/gogpu/morph/raster"

// borderSeed returns an OFF image the size of src with its one pixel
// border ring turned ON.
func borderSeed(src *raster.Image) *raster.Image {
	seed := src.NewTemplate()
	seed.SetBorder(1, 1, 1, 1, true)
	return seed
}

func checkBinarySource(src *raster.Image, conn raster.Connectivity) error {
	if err := checkImage("source", src, raster.Depth1); err != nil {
		return err
	}
	return checkConnectivity(conn)
}

// HolesByFilling returns the holes of the 1 bpp src: the background
// regions that cannot be reached from the image border without crossing
// foreground. Background is flooded from the border with connectivity
// conn, so to find the holes of 8-connected foreground use Conn4 (the
// dual), and vice versa.
func HolesByFilling(src *raster.Image, conn raster.Connectivity) (*raster.Image, error) {
	if err := checkBinarySource(src, conn); err != nil {
		return nil, err
	}

	mask := src.Clone()
	mask.Invert()
	fillImg := borderSeed(src)
	if _, err := SeedfillBinary(fillImg, fillImg, mask, conn); err != nil {
		return nil, err
	}
	if err := fillImg.Or(src); err != nil {
		return nil, err
	}
	fillImg.Invert()
	return fillImg, nil
}

// FillClosedBorders returns every region of the 1 bpp src enclosed by a
// closed curve, together with the curve. Growth from the border never
// starts on a source pixel, so curves touching the border still enclose.
func FillClosedBorders(src *raster.Image, conn raster.Connectivity) (*raster.Image, error) {
	if err := checkBinarySource(src, conn); err != nil {
		return nil, err
	}

	mask := src.Clone()
	mask.Invert()
	fillImg := borderSeed(src)
	if err := fillImg.Subtract(src); err != nil {
		return nil, err
	}
	if _, err := SeedfillBinary(fillImg, fillImg, mask, conn); err != nil {
		return nil, err
	}
	fillImg.Invert()
	return fillImg, nil
}

// ExtractBorderConnComps returns the foreground components of the 1 bpp
// src that touch the image border.
func ExtractBorderConnComps(src *raster.Image, conn raster.Connectivity) (*raster.Image, error) {
	if err := checkBinarySource(src, conn); err != nil {
		return nil, err
	}

	fillImg := borderSeed(src)
	return SeedfillBinary(fillImg, fillImg, src, conn)
}

// RemoveBorderConnComps returns the 1 bpp src without the foreground
// components that touch the image border.
func RemoveBorderConnComps(src *raster.Image, conn raster.Connectivity) (*raster.Image, error) {
	d, err := ExtractBorderConnComps(src, conn)
	if err != nil {
		return nil, err
	}
	if err := d.Xor(src); err != nil {
		return nil, err
	}
	return d, nil
}

// FillBgFromBorder returns the 1 bpp src with every background pixel that
// is conn-connected to the border turned ON, leaving only the holes OFF.
func FillBgFromBorder(src *raster.Image, conn raster.Connectivity) (*raster.Image, error) {
	if err := checkBinarySource(src, conn); err != nil {
		return nil, err
	}

	bg := src.Clone()
	bg.Invert()
	d, err := RemoveBorderConnComps(bg, conn)
	if err != nil {
		return nil, err
	}
	d.Invert()
	return d, nil
}
