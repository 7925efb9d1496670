package radio_test

import (
	"fmt"

	"github.com/go-drift/radiobutton/pkg/graphics"
	"github.com/go-drift/radiobutton/pkg/radio"
)

func ExampleNew() {
	c, err := radio.New(radio.DefaultConfig().WithDiameter(24))
	if err != nil {
		fmt.Println(err)
		return
	}
	c.OnSelect(func() { fmt.Println("selected") })

	c.Select(false)
	fmt.Println(c.IsSelected(), c.Surface(radio.SurfaceOuter).BorderColor)
	// Output:
	// selected
	// true #4A8FE0
}

func ExampleNew_invalidDiameter() {
	_, err := radio.New(radio.DefaultConfig().WithDiameter(0))
	fmt.Println(err)
	// Output:
	// radio.New [config]: invalid diameter 0: must be positive
}

func ExampleControl_SetDeselectedColor() {
	c, _ := radio.New(radio.DefaultConfig())
	c.SetDeselectedColor(graphics.ColorWhite)
	fmt.Println(c.Surface(radio.SurfaceOuter).BorderColor)
	// Output:
	// #FFFFFF
}
