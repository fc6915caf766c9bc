package cabac

// Block is one square coding tile: blockSize*blockSize pixels with
// codedChannels interleaved samples each, flattened row-major (y, x, c).
type Block struct {
	Data []float64
}

// PadDimension rounds n up to the next multiple of blockSize.
func PadDimension(n, blockSize int) int {
	return (n + blockSize - 1) / blockSize * blockSize
}

// BlockCount returns the number of blocks a width*height image tiles into.
func BlockCount(width, height, blockSize int) int {
	return (PadDimension(height, blockSize) / blockSize) *
		(PadDimension(width, blockSize) / blockSize)
}

// TileBlocks partitions a height*width*3 volume into blocks, enumerated
// left-to-right then top-to-bottom. The volume is zero-padded on the
// trailing edges only, so every block holds exactly blockSize*blockSize*3
// samples and padded positions are exactly zero.
func TileBlocks(vol []float64, width, height, blockSize int) []Block {
	blocks := make([]Block, 0, BlockCount(width, height, blockSize))

	for by := 0; by < height; by += blockSize {
		for bx := 0; bx < width; bx += blockSize {
			data := make([]float64, blockSize*blockSize*codedChannels)
			for y := 0; y < blockSize; y++ {
				sy := by + y
				if sy >= height {
					break // rows below the image stay zero
				}
				for x := 0; x < blockSize; x++ {
					sx := bx + x
					if sx >= width {
						break
					}
					src := (sy*width + sx) * codedChannels
					dst := (y*blockSize + x) * codedChannels
					copy(data[dst:dst+codedChannels], vol[src:src+codedChannels])
				}
			}
			blocks = append(blocks, Block{Data: data})
		}
	}
	return blocks
}
