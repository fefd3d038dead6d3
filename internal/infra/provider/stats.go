package provider

import (
	"droidforge/internal/domain/model"
)

const defaultFaceCount = 12000

// estimateStats derives print-planning numbers from the mesh density the
// provider reports. Services that omit a face count get a default preview
// density.
func estimateStats(faces int) model.MeshStats {
	if faces <= 0 {
		faces = defaultFaceCount
	}

	fileSizeMB := faces / 4000
	if fileSizeMB < 5 {
		fileSizeMB = 5
	}

	printTimeMin := 60 + faces/100
	if printTimeMin > 540 {
		printTimeMin = 540
	}

	return model.MeshStats{
		Vertices:     faces / 2,
		Faces:        faces,
		FileSizeMB:   fileSizeMB,
		PrintTimeMin: printTimeMin,
	}
}
