package etc_test

import (
	"fmt"
	"os"

	"github.com/axiomhq/etc"
)

func Example() {
	seq, err := etc.Cast([]int{1, 2, 1, 2, 2, 1, 2, 1})
	if err != nil {
		panic(err)
	}
	res, err := etc.Compute(seq, etc.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.ETC)
	fmt.Printf("%.4f\n", res.NETC)
	// Output:
	// 5
	// 0.7143
}

func ExampleCompute2D() {
	x, y, err := etc.CastPair([]int{1, 2, 1, 2, 2, 1}, []int{1, 1, 2, 2, 1, 1})
	if err != nil {
		panic(err)
	}
	res, err := etc.Compute2D(x, y, etc.DefaultOptions())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.ETC)
	// Output: 5
}

func ExampleOneStep() {
	seq, _ := etc.Cast([]int{1, 2, 1, 2, 2, 1, 2, 1})
	next, f, err := etc.OneStep(seq, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(next, f.Window, f.Count)
	// Output: [3 3 2 3 1] 1 2 3
}

func ExampleCompute_verbose() {
	seq, _ := etc.Cast([]int{1, 1, 2, 2, 1, 1, 2, 2})
	res, err := etc.Compute(seq, etc.Options{Order: 2, Verbose: true})
	if err != nil {
		panic(err)
	}
	for _, s := range res.Trajectory.Steps[1:] {
		fmt.Printf("step %d: %v x%d -> length %d\n", s.Step, s.Window, s.Count, s.Length)
	}
	// Output:
	// step 1: 1 1 x2 -> length 6
	// step 2: 3 2 x2 -> length 4
	// step 3: 4 2 x2 -> length 2
}

func ExampleTrajectory_WriteTo() {
	tr := &etc.Trajectory{Steps: []etc.Step{
		{Step: 0, Length: 3, Entropy: 1.5},
		{Step: 1, Length: 2, Entropy: 1, Window: etc.Window{1, 2}, Count: 1},
		{Step: 2, Length: 1, Window: etc.Window{4, 3}, Count: 1},
	}}
	if _, err := tr.WriteTo(os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// step,length,entropy,window,count,time
	// 0,3,1.5,,,
	// 1,2,1,1 2,1,0
	// 2,1,0,4 3,1,0
}
