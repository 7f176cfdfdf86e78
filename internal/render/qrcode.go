package render

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	// MaxVersion is the largest QR version.
	MaxVersion = 40

	// QuietZone is the border, in modules, included in every Matrix.
	QuietZone = 4
)

// Matrix is a square module grid including the quiet zone. true is a dark
// module.
type Matrix [][]bool

// Dimension returns the number of modules per side.
func (m Matrix) Dimension() int { return len(m) }

// MatrixDimension returns the side length of a Matrix for version.
func MatrixDimension(version int) int {
	return 4*version + 17 + 2*QuietZone
}

// MakeMatrix encodes payload at error correction level H. With
// forcedVersion == AutoVersion the smallest fitting version is used;
// otherwise encoding happens at exactly forcedVersion. The version
// actually used is returned alongside the matrix.
func MakeMatrix(payload string, forcedVersion int) (Matrix, int, error) {
	if payload == "" {
		return nil, 0, fmt.Errorf("%w: payload is empty", ErrValidation)
	}
	if forcedVersion < AutoVersion || forcedVersion > MaxVersion {
		return nil, 0, fmt.Errorf("%w: version %d out of range [1, %d]", ErrValidation, forcedVersion, MaxVersion)
	}

	var (
		qr  *qrcode.QRCode
		err error
	)
	if forcedVersion == AutoVersion {
		qr, err = qrcode.New(payload, qrcode.Highest)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
	} else {
		qr, err = qrcode.NewWithForcedVersion(payload, forcedVersion, qrcode.Highest)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: version %d: %v", ErrCapacityExceeded, forcedVersion, err)
		}
	}

	qr.DisableBorder = false
	return Matrix(qr.Bitmap()), qr.VersionNumber, nil
}
