package levenshtein

// Distance возвращает классическое расстояние Левенштейна между двумя строками:
// минимальное число вставок, удалений и замен одного символа.
// Работает по рунам, поэтому кириллица считается корректно.
// Регистр не нормализуется — это ответственность вызывающего кода.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Храним только две строки матрицы, полная таблица не нужна
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // удаление
				curr[j-1]+1,    // вставка
				prev[j-1]+cost, // замена
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// WithinThreshold сообщает, не превышает ли расстояние порог.
// Сравнение длин позволяет не считать матрицу, когда ответ очевиден.
func WithinThreshold(a, b string, threshold int) bool {
	if threshold < 0 {
		return false
	}

	diff := len([]rune(a)) - len([]rune(b))
	if diff < 0 {
		diff = -diff
	}
	if diff > threshold {
		return false
	}

	return Distance(a, b) <= threshold
}
