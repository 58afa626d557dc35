package fixture

import "fmt"

// Dummy carries a single value; the greet fixture prints it next to each
// greeting.
type Dummy struct {
	Value int
}

// Greeting returns "Hello, <name>!".
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// greetLines builds "Hello, User<i>! <i>" for i in [0, count).
func greetLines(count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("greet count %d: %w", count, ErrInvalidInput)
	}

	lines := make([]string, count)
	for i := range lines {
		d := Dummy{Value: i}
		lines[i] = fmt.Sprintf("%s %d", Greeting(fmt.Sprintf("User%d", i)), d.Value)
	}

	return lines, nil
}
