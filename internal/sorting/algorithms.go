package sorting

import "github.com/san-kum/sortviz/internal/trace"

// BubbleSort visits every adjacent pair of every pass, without early exit.
func BubbleSort(seq trace.Sequence) trace.Trace {
	r := newRecorder(seq)
	n := len(r.a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if r.greater(j, j+1) {
				r.swap(j, j+1)
			}
		}
	}
	return r.result()
}

// QuickSort uses Lomuto partitioning with the last element as pivot.
func QuickSort(seq trace.Sequence) trace.Trace {
	r := newRecorder(seq)
	quickSort(r, 0, len(r.a)-1)
	return r.result()
}

func quickSort(r *recorder, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(r, lo, hi)
	quickSort(r, lo, p-1)
	quickSort(r, p+1, hi)
}

func partition(r *recorder, lo, hi int) int {
	i := lo
	for j := lo; j < hi; j++ {
		// a[j] < pivot, phrased as pivot > a[j]
		if r.greater(hi, j) {
			if i != j {
				r.swap(i, j)
			}
			i++
		}
	}
	if i != hi {
		r.swap(i, hi)
	}
	return i
}

// MergeSort is a stable top-down merge sort. Every value copied back from the
// merge buffer is recorded as an overwrite.
func MergeSort(seq trace.Sequence) trace.Trace {
	r := newRecorder(seq)
	if len(r.a) > 1 {
		buf := make(trace.Sequence, len(r.a))
		mergeSort(r, buf, 0, len(r.a)-1)
	}
	return r.result()
}

func mergeSort(r *recorder, buf trace.Sequence, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(r, buf, lo, mid)
	mergeSort(r, buf, mid+1, hi)
	merge(r, buf, lo, mid, hi)
}

func merge(r *recorder, buf trace.Sequence, lo, mid, hi int) {
	copy(buf[lo:hi+1], r.a[lo:hi+1])

	i, j, k := lo, mid+1, lo
	for i <= mid && j <= hi {
		r.compare(i, j)
		if buf[j] < buf[i] {
			r.overwrite(k, buf[j])
			j++
		} else {
			r.overwrite(k, buf[i])
			i++
		}
		k++
	}
	for ; i <= mid; i++ {
		r.overwrite(k, buf[i])
		k++
	}
	for ; j <= hi; j++ {
		r.overwrite(k, buf[j])
		k++
	}
}

// HeapSort builds a max-heap and repeatedly moves the root behind the heap.
func HeapSort(seq trace.Sequence) trace.Trace {
	r := newRecorder(seq)
	n := len(r.a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(r, i, n)
	}
	for end := n - 1; end > 0; end-- {
		r.swap(0, end)
		siftDown(r, 0, end)
	}
	return r.result()
}

func siftDown(r *recorder, root, n int) {
	for {
		largest := root
		if left := 2*root + 1; left < n && r.greater(left, largest) {
			largest = left
		}
		if right := 2*root + 2; right < n && r.greater(right, largest) {
			largest = right
		}
		if largest == root {
			return
		}
		r.swap(root, largest)
		root = largest
	}
}
