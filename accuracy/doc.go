// Package accuracy scores a forecast against the values that were later
// observed.
//
// Point metrics (MAE, RMSE, bias) compare the two series index by index.
// Dynamic Time Warping (DTW) compares their shapes: a forecast that gets a
// turn right but one step late scores far better under DTW than under RMSE.
//
// Usage:
//
//	score, err := accuracy.Evaluate(forecast, holdout)
//	if err != nil {
//		// ErrEmptySequence or ErrLengthMismatch
//	}
//	fmt.Println(score.RMSE, score.DTW)
//
//	opts := accuracy.DefaultOptions()
//	opts.Window = 2
//	opts.ReturnPath = true
//	dist, path, err := accuracy.DTW(a, b, &opts)
//
// Complexity:
//
//   - Evaluate: O(n²) time, O(n) memory (DTW in TwoRows mode).
//   - DTW: O(n·m) time; O(n·m) memory with FullMatrix, O(m) with TwoRows.
package accuracy
