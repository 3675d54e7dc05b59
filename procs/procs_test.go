package procs

import "testing"

type countdown struct {
	n *int
}

func (c countdown) Run(acc *[]int) (Proc[*[]int], error) {
	if *c.n == 0 {
		return nil, nil
	}
	*acc = append(*acc, *c.n)
	*c.n--
	return c, nil
}

func TestProcsTrampoline(t *testing.T) {
	a, b := 2, 3
	var acc []int
	var proc Proc[*[]int] = Procs[*[]int]{
		countdown{&a},
		countdown{&b},
	}
	for proc != nil {
		next, err := proc.Run(&acc)
		if err != nil {
			t.Fatal(err)
		}
		proc = next
	}
	if len(acc) != 5 {
		t.Fatalf("got %v", acc)
	}
	if acc[0] != 2 || acc[2] != 3 {
		t.Fatalf("got %v", acc)
	}
}
