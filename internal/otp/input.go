package otp

// Input — состояние поля ввода кода из Length ячеек.
// Каждая ячейка хранит одну цифру или пусто. Любой отклонённый ввод
// оставляет состояние без изменений.
type Input struct {
	cells [Length]byte
}

// Set записывает значение в ячейку i. Допустимы одна цифра или "" (очистка).
func (in *Input) Set(i int, v string) error {
	if i < 0 || i >= Length {
		return ErrIndexOutOfRange
	}

	switch {
	case v == "":
		in.cells[i] = 0
	case len(v) == 1 && isDigit(v[0]):
		in.cells[i] = v[0]
	default:
		return ErrInvalidDigit
	}

	return nil
}

// Paste заполняет все ячейки из вставленного текста.
func (in *Input) Paste(text string) error {
	code, err := ParsePaste(text)
	if err != nil {
		return err
	}

	for i := 0; i < Length; i++ {
		in.cells[i] = code[i]
	}

	return nil
}

// Value возвращает введённые цифры подряд (пустые ячейки пропускаются).
func (in *Input) Value() string {
	out := make([]byte, 0, Length)
	for _, c := range in.cells {
		if c != 0 {
			out = append(out, c)
		}
	}

	return string(out)
}

// Complete — все ячейки заполнены.
func (in *Input) Complete() bool {
	for _, c := range in.cells {
		if c == 0 {
			return false
		}
	}

	return true
}

// Code возвращает код, если ввод полон, иначе ErrInvalidCode.
func (in *Input) Code() (string, error) {
	if !in.Complete() {
		return "", ErrInvalidCode
	}

	return in.Value(), nil
}

// Reset очищает все ячейки.
func (in *Input) Reset() {
	in.cells = [Length]byte{}
}
