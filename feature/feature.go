/*
Package feature defines the measurable properties of a plant specimen
and their encoding into the fixed-length numeric vectors the classifier
works on.
*/
package feature

import (
	"fmt"
	"math"
)

// Indices of the specimen features within a Vector. The order is fixed
// and shared by the training corpus, the tree and the rule exporter.
const (
	HeightCm = iota
	LeafWidthCm
	StemCode

	// Count is the number of features in a Vector.
	Count = 3
)

/*
Vector is the ordered numeric encoding of a specimen's measurements:
height in cm, leaf width in cm and the ordinal stem quality code.
*/
type Vector [Count]float64

/*
EncodingError represents an error encoding raw specimen measurements
into a Vector.
*/
type EncodingError string

/*
ErrUnknownStemQuality is the error returned when a stem quality token
is not one of thin, medium or thick.
*/
const ErrUnknownStemQuality = EncodingError("unknown stem quality: valid values are thin, medium and thick")

/*
ErrNonFiniteMeasurement is the error returned when a measurement is NaN
or infinite. Routing a vector through the tree compares measurements
against thresholds, which is only total over finite values.
*/
const ErrNonFiniteMeasurement = EncodingError("measurements must be finite numbers")

func (ee EncodingError) Error() string {
	return string(ee)
}

/*
StemQuality represents the categorical thickness of a specimen's stem
as an ordinal value: thin < medium < thick. The numeric codes are fixed
so that splitting on the stem feature with a numeric threshold respects
this order.
*/
type StemQuality int

// The recognized stem qualities, in increasing thickness order.
const (
	StemThin StemQuality = iota
	StemMedium
	StemThick
)

var stemQualityNames = [...]string{"thin", "medium", "thick"}

/*
ParseStemQuality takes a stem quality token and returns the
corresponding StemQuality, or ErrUnknownStemQuality if the token is not
one of thin, medium or thick.
*/
func ParseStemQuality(token string) (StemQuality, error) {
	for i, n := range stemQualityNames {
		if n == token {
			return StemQuality(i), nil
		}
	}
	return 0, ErrUnknownStemQuality
}

func (sq StemQuality) String() string {
	if sq < StemThin || sq > StemThick {
		return fmt.Sprintf("StemQuality(%d)", int(sq))
	}
	return stemQualityNames[sq]
}

/*
Code returns the fixed numeric code for the stem quality
(thin=0, medium=1, thick=2).
*/
func (sq StemQuality) Code() float64 {
	return float64(sq)
}

/*
StemQualities returns the recognized stem quality tokens in increasing
thickness order.
*/
func StemQualities() []string {
	return append([]string{}, stemQualityNames[:]...)
}

/*
Encode takes a specimen's height in cm, leaf width in cm and stem
quality and returns its Vector. It returns ErrNonFiniteMeasurement if
either measurement is NaN or infinite. Values outside the ranges seen
during training are still encoded: the tree extrapolates instead of
rejecting them.
*/
func Encode(heightCm, leafWidthCm float64, stem StemQuality) (Vector, error) {
	if !isFinite(heightCm) || !isFinite(leafWidthCm) {
		return Vector{}, ErrNonFiniteMeasurement
	}
	return Vector{heightCm, leafWidthCm, stem.Code()}, nil
}

/*
EncodeTokens is like Encode but takes the stem quality as its raw
token, returning ErrUnknownStemQuality if it is not recognized. No
partial vector is produced on failure.
*/
func EncodeTokens(heightCm, leafWidthCm float64, stemToken string) (Vector, error) {
	stem, err := ParseStemQuality(stemToken)
	if err != nil {
		return Vector{}, err
	}
	return Encode(heightCm, leafWidthCm, stem)
}

/*
Names returns the human-readable names of the features in Vector
order. They are the names the rule exporter renders by default.
*/
func Names() []string {
	return []string{"height_cm", "leaf_width_cm", "stem_quality_code"}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
