// conversions.go

package plotpy

import (
	"math"
	"strconv"
	"strings"
)

// ftoa formats a float for the generated script. The shortest
// representation that round-trips float64 is used; NaN maps to the NaN
// variable defined by the python header.
func ftoa(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// pyEscape makes s safe inside a single-quoted python string.
func pyEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// writeVector writes a 1D NumPy array assignment: name=np.array([...],dtype=float)
func writeVector(b *strings.Builder, name string, v []float64) {
	b.WriteString(name)
	b.WriteString("=np.array([")
	for _, x := range v {
		b.WriteString(ftoa(x))
		b.WriteByte(',')
	}
	b.WriteString("],dtype=float)\n")
}

// writeMatrix writes a 2D NumPy array assignment: name=np.array([[...],...],dtype=float)
func writeMatrix(b *strings.Builder, name string, m [][]float64) {
	b.WriteString(name)
	b.WriteString("=np.array([")
	for _, row := range m {
		b.WriteByte('[')
		for _, x := range row {
			b.WriteString(ftoa(x))
			b.WriteByte(',')
		}
		b.WriteString("],")
	}
	b.WriteString("],dtype=float)\n")
}

// writeStrings writes a python list of quoted strings: name=['a','b',]
func writeStrings(b *strings.Builder, name string, v []string) {
	b.WriteString(name)
	b.WriteString("=[")
	for _, s := range v {
		b.WriteByte('\'')
		b.WriteString(pyEscape(s))
		b.WriteString("',")
	}
	b.WriteString("]\n")
}

// floatList returns an inline python list: [1,2.5,3]
func floatList(v []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(ftoa(x))
	}
	b.WriteByte(']')
	return b.String()
}

// stringList returns an inline python list of quoted strings: ['a','b']
func stringList(v []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('\'')
		b.WriteString(pyEscape(s))
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// checkMatrices verifies that x, y and z are non-empty, rectangular,
// and share the same shape.
func checkMatrices(x, y, z [][]float64) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return invalidParamf("matrices must not be empty")
	}
	if len(y) != len(x) || len(z) != len(x) {
		return invalidParamf("matrices must have the same number of rows (got %d, %d, %d)",
			len(x), len(y), len(z))
	}
	ncol := len(x[0])
	for i := range x {
		if len(x[i]) != ncol || len(y[i]) != ncol || len(z[i]) != ncol {
			return invalidParamf("matrices must be rectangular with equal shapes (row %d)", i)
		}
	}
	return nil
}
