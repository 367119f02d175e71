package vtree

// This file implements the DC3 / skew suffix array algorithm of Kärkkäinen
// and Sanders: build the suffix array of the 2/3 of suffixes starting at
// positions not congruent to 0 mod 3 by recursive reduction to a smaller
// string, then derive the mod-0 suffixes by a single radix sort against the
// now-known ranks, and merge the two sorted sets with a comparator that
// reads one or two raw symbols plus a rank lookup depending on the mod-3
// class. Every array is padded with three sentinel zero cells past its
// logical end so the comparator can always read ahead safely.

func leq2(a1, a2, b1, b2 int) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

func leq3(a1, a2, a3, b1, b2, b3 int) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}

// radixPass stable-sorts the indices in a (reading key r[a[i]]) into b,
// using counting sort over the alphabet [0,K].
func radixPass(a, b, r []int, n, K int) {
	count := make([]int, K+2)
	for i := 0; i < n; i++ {
		count[r[a[i]]+1]++
	}
	for i := 1; i <= K+1; i++ {
		count[i] += count[i-1]
	}
	for i := 0; i < n; i++ {
		b[count[r[a[i]]]] = a[i]
		count[r[a[i]]]++
	}
}

// suffixArray fills SA[0..n-1] with the suffix array of s[0..n-1], where
// s carries symbol values in [0,K] and s[n], s[n+1], s[n+2] are 0
// (sentinel padding required by the merge step).
func suffixArray(s, SA []int, n, K int) {
	n0 := (n + 2) / 3
	n1 := (n + 1) / 3
	n2 := n / 3
	n02 := n0 + n2

	s12 := make([]int, n02+3)
	SA12 := make([]int, n02+3)
	s0 := make([]int, n0)
	SA0 := make([]int, n0)

	// generate positions of mod-1 and mod-2 suffixes, sort by first three
	// characters via three rounds of radix sort.
	j := 0
	for i := 0; i < n+(n0-n1); i++ {
		if i%3 != 0 {
			s12[j] = i
			j++
		}
	}
	radixPass(s12, SA12, s[2:], n02, K)
	radixPass(SA12, s12, s[1:], n02, K)
	radixPass(s12, SA12, s, n02, K)

	// name the triples to build the reduced problem.
	name := 0
	c0, c1, c2 := -1, -1, -1
	for i := 0; i < n02; i++ {
		p := SA12[i]
		if s[p] != c0 || s[p+1] != c1 || s[p+2] != c2 {
			name++
			c0, c1, c2 = s[p], s[p+1], s[p+2]
		}
		if p%3 == 1 {
			s12[p/3] = name
		} else {
			s12[p/3+n0] = name
		}
	}

	if name < n02 {
		// names are not unique: recurse on the reduced string.
		suffixArray(s12, SA12, n02, name)
		for i := 0; i < n02; i++ {
			s12[SA12[i]] = i + 1
		}
	} else {
		// names are already unique: SA12 can be read off directly.
		for i := 0; i < n02; i++ {
			SA12[s12[i]-1] = i
		}
	}

	// sort mod-0 suffixes by their first character using SA12 as a
	// secondary key (mod-1 suffixes are already ranked).
	j = 0
	for i := 0; i < n02; i++ {
		if SA12[i] < n0 {
			s0[j] = 3 * SA12[i]
			j++
		}
	}
	radixPass(s0, SA0, s, n0, K)

	// merge sorted SA0 and SA12.
	getI := func(t int) int {
		if SA12[t] < n0 {
			return SA12[t]*3 + 1
		}
		return (SA12[t]-n0)*3 + 2
	}

	p, t, k := 0, n0-n1, 0
	for k < n {
		i := getI(t)
		jj := SA0[p]
		var less bool
		if SA12[t] < n0 {
			less = leq2(s[i], s12[SA12[t]+n0], s[jj], s12[jj/3])
		} else {
			less = leq3(s[i], s[i+1], s12[SA12[t]-n0+1], s[jj], s[jj+1], s12[jj/3+n0])
		}
		if less {
			SA[k] = i
			t++
			k++
			if t == n02 {
				for p < n0 {
					SA[k] = SA0[p]
					p++
					k++
				}
			}
		} else {
			SA[k] = jj
			p++
			k++
			if p == n0 {
				for t < n02 {
					SA[k] = getI(t)
					t++
					k++
				}
			}
		}
	}
}
