package layout

// Max は2つの整数の大きい方を返す
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min は2つの整数の小さい方を返す
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
