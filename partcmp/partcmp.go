// Package partcmp compares two flat integer partitions of the same n
// points — typically a ground-truth labelling against geniclust's output —
// and reports the standard chance-corrected agreement scores: Rand,
// adjusted Rand, Fowlkes-Mallows, adjusted Fowlkes-Mallows, and mutual
// information (plain, normalised, adjusted).
package partcmp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds the scores Compare computes, matching the reference
// definitions in Hubert & Arabie (1985) and Vinh, Epps & Bailey (2010).
type Result struct {
	AR  float64 // adjusted Rand index
	R   float64 // (nonadjusted) Rand index
	FM  float64 // Fowlkes-Mallows index
	AFM float64 // adjusted Fowlkes-Mallows index
	MI  float64 // mutual information
	NMI float64 // normalised mutual information (sum variant)
	AMI float64 // adjusted mutual information (sum variant)
}

// comb2 is (t choose 2) over reals, the building block of both the Rand
// and Fowlkes-Mallows scores.
func comb2(t float64) float64 { return t * (t - 1.0) * 0.5 }

// ContingencyTable builds the xc-by-yc confusion matrix between two
// equal-length label slices. Labels need not start at 0 or be contiguous;
// each axis is independently remapped to [0, distinct count). The two
// returned label-to-row/col maps let callers translate matrix indices
// back to the original label values.
func ContingencyTable(x, y []int) (c *mat.Dense, xLabels, yLabels []int) {
	xLabels = distinctSorted(x)
	yLabels = distinctSorted(y)
	xIndex := indexOf(xLabels)
	yIndex := indexOf(yLabels)

	c = mat.NewDense(len(xLabels), len(yLabels), nil)
	for i := range x {
		r, cc := xIndex[x[i]], yIndex[y[i]]
		c.Set(r, cc, c.At(r, cc)+1)
	}
	return c, xLabels, yLabels
}

func distinctSorted(a []int) []int {
	seen := map[int]bool{}
	for _, v := range a {
		seen[v] = true
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	// simple insertion sort: label counts are always tiny (cluster counts).
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func indexOf(labels []int) map[int]int {
	m := make(map[int]int, len(labels))
	for i, l := range labels {
		m[l] = i
	}
	return m
}

// ApplyPivoting permutes the columns of c in place so that, as far as
// possible, the largest entry of each row lands on the main diagonal. This
// has no effect on any score Compare returns (they are all permutation
// invariant); it only makes a printed confusion matrix easier to read when
// the two labellings are expected to roughly agree.
func ApplyPivoting(c *mat.Dense) {
	xc, yc := c.Dims()
	lim := xc - 1
	if yc-1 < lim {
		lim = yc - 1
	}
	for i := 0; i < lim; i++ {
		w := i
		for j := i + 1; j < yc; j++ {
			if c.At(i, w) < c.At(i, j) {
				w = j
			}
		}
		if w == i {
			continue
		}
		for row := 0; row < xc; row++ {
			a, b := c.At(row, i), c.At(row, w)
			c.Set(row, i, b)
			c.Set(row, w, a)
		}
	}
}

// Compare computes AR/R/FM/AFM/MI/NMI/AMI from a confusion matrix. Every
// score is symmetric in swapping the matrix's two axes — callers normally
// build c with ContingencyTable.
func Compare(c *mat.Dense) Result {
	xc, yc := c.Dims()

	n := 0.0
	for i := 0; i < xc; i++ {
		for j := 0; j < yc; j++ {
			n += c.At(i, j)
		}
	}

	sumX := make([]float64, xc)
	sumY := make([]float64, yc)

	var sumCombX, sumCombY, sumComb float64
	var hX, hY, hXCondY, hXY float64

	for i := 0; i < xc; i++ {
		var t float64
		for j := 0; j < yc; j++ {
			v := c.At(i, j)
			if v > 0 {
				hXY += v * math.Log(v/n)
			}
			t += v
			sumComb += comb2(v)
		}
		sumCombX += comb2(t)
		sumX[i] = t
		if t > 0 {
			hY += t * math.Log(t/n)
		}
	}

	for j := 0; j < yc; j++ {
		var t float64
		for i := 0; i < xc; i++ {
			v := c.At(i, j)
			if v > 0 {
				hXCondY += v * math.Log(v/sumX[i])
			}
			t += v
		}
		sumCombY += comb2(t)
		sumY[j] = t
		if t > 0 {
			hX += t * math.Log(t/n)
		}
	}

	hX = -hX / n
	hY = -hY / n
	hXCondY = -hXCondY / n
	_ = hXY

	prodComb := (sumCombX * sumCombY) / n / (n - 1.0) * 2.0
	meanComb := (sumCombX + sumCombY) * 0.5
	eFM := prodComb / math.Sqrt(sumCombX*sumCombY)

	eMI := expectedMutualInformation(sumX, sumY, n)

	mi := hX - hXCondY
	res := Result{
		AR:  (sumComb - prodComb) / (meanComb - prodComb),
		R:   1.0 + (2.0*sumComb-(sumCombX+sumCombY))/n/(n-1.0)*2.0,
		FM:  sumComb / math.Sqrt(sumCombX*sumCombY),
		MI:  mi,
		NMI: mi / (0.5 * (hX + hY)),
		AMI: (mi - eMI) / (0.5*(hX+hY) - eMI),
	}
	res.AFM = (res.FM - eFM) / (1.0 - eFM)
	return res
}

// expectedMutualInformation computes the baseline MI expected between two
// random partitions with the same row/column marginals, following Vinh,
// Epps & Bailey (2010), Eq. in Sec. 3 (the hypergeometric-model formula).
func expectedMutualInformation(sumX, sumY []float64, n float64) float64 {
	var eMI float64
	for i := range sumX {
		fac0 := lgamma(sumX[i]+1) + lgamma(n-sumX[i]+1) - lgamma(n+1)
		for j := range sumY {
			fac1 := math.Log(n / sumX[i] / sumY[j])
			fac2 := fac0 + lgamma(sumY[j]+1) + lgamma(n-sumY[j]+1)

			lo := math.Max(1.0, sumX[i]+sumY[j]-n)
			hi := math.Min(sumX[i], sumY[j])
			for nij := lo; nij <= hi; nij++ {
				fac3 := fac2
				fac3 -= lgamma(nij + 1)
				fac3 -= lgamma(sumX[i] - nij + 1)
				fac3 -= lgamma(sumY[j] - nij + 1)
				fac3 -= lgamma(n - sumX[i] - sumY[j] + nij + 1)
				eMI += nij * (fac1 + math.Log(nij)) * math.Exp(fac3)
			}
		}
	}
	return eMI / n
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
