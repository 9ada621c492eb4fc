package bidsort

import "fmt"

// SelectionSort orders bids in place by ascending title.
//
// Titles are compared byte-wise. Each pass scans the whole unsorted tail,
// including its last element, for the smallest title and swaps it into
// place only when it is strictly smaller. The order of equal titles is not
// preserved. It performs O(n²) comparisons and no allocation.
func SelectionSort(bids []Bid) {
	for pos := 0; pos < len(bids)-1; pos++ {
		least := pos
		for j := pos + 1; j < len(bids); j++ {
			if bids[j].Title < bids[least].Title {
				least = j
			}
		}
		if least != pos {
			bids[pos], bids[least] = bids[least], bids[pos]
		}
	}
}

// QuickSort orders bids[begin:end+1] in place by ascending title.
//
// The range is inclusive on both ends, so sorting a whole slice is
// QuickSort(bids, 0, len(bids)-1), which is a no-op for an empty slice.
// Ranges with begin >= end are left untouched. A non-empty range that does
// not fit in bids panics.
//
// The pivot is the middle element of each range, see [Partition]. The
// smaller side of each split is sorted recursively and the larger one
// iteratively, which bounds the stack depth to O(log n) even when the
// running time degrades to O(n²). The order of equal titles is not
// preserved.
func QuickSort(bids []Bid, begin, end int) {
	if begin >= end {
		return
	}
	if begin < 0 || end >= len(bids) {
		panic(fmt.Sprintf("bidsort: QuickSort range [%d, %d] out of bounds for length %d", begin, end, len(bids)))
	}

	for begin < end {
		mid := Partition(bids, begin, end)
		if mid-begin < end-mid {
			QuickSort(bids, begin, mid)
			begin = mid + 1
		} else {
			QuickSort(bids, mid+1, end)
			end = mid
		}
	}
}

// Partition splits bids[begin:end+1] around the title found at its middle
// and returns the split index.
//
// On return every title in [begin, split] is lower than or equal to every
// title in [split+1, end], and begin <= split < end whenever begin < end.
// The pivot title is read once, so moving the pivot element during the
// scan does not change it. This is Hoare's scheme: two indices converge
// from both ends, skipping titles strictly on their side of the pivot and
// swapping the pairs that are not.
func Partition(bids []Bid, begin, end int) int {
	low, high := begin, end
	pivot := bids[begin+(end-begin)/2].Title

	for {
		for bids[low].Title < pivot {
			low++
		}
		for pivot < bids[high].Title {
			high--
		}
		if low >= high {
			return high
		}
		bids[low], bids[high] = bids[high], bids[low]
		low++
		high--
	}
}
