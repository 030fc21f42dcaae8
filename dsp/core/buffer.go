package core

// AppendTail appends a copy of the last n samples of buf to buf.
// It is a no-op when buf holds fewer than n samples.
func AppendTail(buf []float64, n int) []float64 {
	if n <= 0 || len(buf) < n {
		return buf
	}
	return append(buf, buf[len(buf)-n:]...)
}
