package particles

import "math"

const (
	// SphereSegmentsX and SphereSegmentsY are the longitude/latitude tessellation of the spark mesh.
	SphereSegmentsX = 32
	SphereSegmentsY = 32
)

// BuildSphere tessellates a unit UV-sphere and returns packed xyz positions
// plus a single serpentine triangle-strip index list.
//
// Rows alternate direction (even rows left to right, odd rows right to left)
// so consecutive row pairs join without restart indices.
func BuildSphere(xSegments, ySegments int) ([]float32, []uint32) {
	if xSegments < 1 || ySegments < 1 {
		return nil, nil
	}

	vertices := make([]float32, 0, (xSegments+1)*(ySegments+1)*3)
	for y := 0; y <= ySegments; y++ {
		v := float64(y) / float64(ySegments)
		for x := 0; x <= xSegments; x++ {
			u := float64(x) / float64(xSegments)
			xPos := math.Cos(u*2*math.Pi) * math.Sin(v*math.Pi)
			yPos := math.Cos(v * math.Pi)
			zPos := math.Sin(u*2*math.Pi) * math.Sin(v*math.Pi)
			vertices = append(vertices, float32(xPos), float32(yPos), float32(zPos))
		}
	}

	stride := uint32(xSegments + 1)
	indices := make([]uint32, 0, ySegments*(xSegments+1)*2)
	for y := 0; y < ySegments; y++ {
		row := uint32(y)
		if y%2 == 0 {
			for x := 0; x <= xSegments; x++ {
				indices = append(indices, row*stride+uint32(x), (row+1)*stride+uint32(x))
			}
		} else {
			for x := xSegments; x >= 0; x-- {
				indices = append(indices, (row+1)*stride+uint32(x), row*stride+uint32(x))
			}
		}
	}

	return vertices, indices
}
