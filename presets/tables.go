package presets

import "github.com/setanarut/palettizer"

// Windows system palettes.
var win16 = []palettizer.RGB{
	{R: 0, G: 0, B: 0}, {R: 0, G: 0, B: 128}, {R: 0, G: 0, B: 255}, {R: 0, G: 128, B: 0}, {R: 0, G: 128, B: 128}, {R: 0, G: 255, B: 0},
	{R: 0, G: 255, B: 255}, {R: 128, G: 0, B: 0}, {R: 128, G: 0, B: 128}, {R: 128, G: 128, B: 0}, {R: 128, G: 128, B: 128}, {R: 160, G: 160, B: 160},
	{R: 255, G: 0, B: 0}, {R: 255, G: 0, B: 255}, {R: 255, G: 255, B: 0}, {R: 255, G: 255, B: 255},
}

var win256 = []palettizer.RGB{
	{R: 0, G: 0, B: 0}, {R: 128, G: 0, B: 0}, {R: 0, G: 128, B: 0}, {R: 128, G: 128, B: 0}, {R: 0, G: 0, B: 128}, {R: 128, G: 0, B: 128},
	{R: 0, G: 128, B: 128}, {R: 128, G: 128, B: 128}, {R: 192, G: 220, B: 192}, {R: 166, G: 202, B: 240}, {R: 42, G: 63, B: 170}, {R: 42, G: 63, B: 255},
	{R: 42, G: 95, B: 0}, {R: 42, G: 95, B: 85}, {R: 42, G: 95, B: 170}, {R: 42, G: 95, B: 255}, {R: 42, G: 127, B: 0}, {R: 42, G: 127, B: 85},
	{R: 42, G: 127, B: 170}, {R: 42, G: 127, B: 255}, {R: 42, G: 159, B: 0}, {R: 42, G: 159, B: 85}, {R: 42, G: 159, B: 170}, {R: 42, G: 159, B: 255},
	{R: 42, G: 191, B: 0}, {R: 42, G: 191, B: 85}, {R: 42, G: 191, B: 170}, {R: 42, G: 191, B: 255}, {R: 42, G: 223, B: 0}, {R: 42, G: 223, B: 85},
	{R: 42, G: 223, B: 170}, {R: 42, G: 223, B: 255}, {R: 42, G: 255, B: 0}, {R: 42, G: 255, B: 85}, {R: 42, G: 255, B: 170}, {R: 42, G: 255, B: 255},
	{R: 85, G: 0, B: 0}, {R: 85, G: 0, B: 85}, {R: 85, G: 0, B: 170}, {R: 85, G: 0, B: 255}, {R: 85, G: 31, B: 0}, {R: 85, G: 31, B: 85},
	{R: 85, G: 31, B: 255}, {R: 85, G: 63, B: 0}, {R: 85, G: 63, B: 0}, {R: 85, G: 63, B: 85}, {R: 85, G: 63, B: 170}, {R: 85, G: 63, B: 255},
	{R: 85, G: 95, B: 0}, {R: 85, G: 95, B: 85}, {R: 85, G: 95, B: 170}, {R: 85, G: 95, B: 255}, {R: 85, G: 127, B: 0}, {R: 85, G: 127, B: 85},
	{R: 85, G: 127, B: 170}, {R: 85, G: 127, B: 255}, {R: 85, G: 159, B: 0}, {R: 85, G: 159, B: 85}, {R: 85, G: 159, B: 170}, {R: 85, G: 159, B: 255},
	{R: 85, G: 191, B: 0}, {R: 85, G: 191, B: 85}, {R: 85, G: 191, B: 170}, {R: 85, G: 191, B: 255}, {R: 85, G: 223, B: 0}, {R: 85, G: 223, B: 85},
	{R: 85, G: 223, B: 170}, {R: 85, G: 223, B: 255}, {R: 85, G: 255, B: 0}, {R: 85, G: 255, B: 85}, {R: 85, G: 255, B: 170}, {R: 85, G: 255, B: 255},
	{R: 127, G: 0, B: 0}, {R: 127, G: 0, B: 85}, {R: 127, G: 0, B: 170}, {R: 127, G: 0, B: 255}, {R: 127, G: 31, B: 0}, {R: 127, G: 31, B: 85},
	{R: 127, G: 31, B: 170}, {R: 127, G: 31, B: 255}, {R: 127, G: 63, B: 0}, {R: 127, G: 63, B: 85}, {R: 127, G: 63, B: 170}, {R: 127, G: 63, B: 255},
	{R: 127, G: 95, B: 0}, {R: 127, G: 95, B: 85}, {R: 127, G: 95, B: 170}, {R: 127, G: 95, B: 255}, {R: 127, G: 127, B: 0}, {R: 127, G: 127, B: 85},
	{R: 127, G: 127, B: 170}, {R: 127, G: 127, B: 255}, {R: 127, G: 159, B: 0}, {R: 127, G: 159, B: 85}, {R: 127, G: 159, B: 170}, {R: 127, G: 159, B: 255},
	{R: 127, G: 191, B: 0}, {R: 127, G: 191, B: 85}, {R: 127, G: 191, B: 170}, {R: 127, G: 191, B: 255}, {R: 127, G: 223, B: 0}, {R: 127, G: 223, B: 85},
	{R: 127, G: 223, B: 170}, {R: 127, G: 223, B: 255}, {R: 127, G: 255, B: 0}, {R: 127, G: 255, B: 85}, {R: 127, G: 255, B: 170}, {R: 127, G: 255, B: 255},
	{R: 170, G: 0, B: 0}, {R: 170, G: 0, B: 85}, {R: 170, G: 0, B: 170}, {R: 170, G: 0, B: 255}, {R: 170, G: 31, B: 0}, {R: 170, G: 31, B: 85},
	{R: 170, G: 31, B: 170}, {R: 170, G: 31, B: 255}, {R: 170, G: 63, B: 0}, {R: 170, G: 63, B: 85}, {R: 170, G: 63, B: 170}, {R: 170, G: 63, B: 255},
	{R: 170, G: 95, B: 0}, {R: 170, G: 95, B: 85}, {R: 170, G: 95, B: 170}, {R: 170, G: 95, B: 255}, {R: 170, G: 127, B: 0}, {R: 170, G: 127, B: 85},
	{R: 170, G: 127, B: 170}, {R: 170, G: 127, B: 255}, {R: 170, G: 159, B: 0}, {R: 170, G: 159, B: 85}, {R: 170, G: 159, B: 170}, {R: 170, G: 159, B: 255},
	{R: 170, G: 191, B: 0}, {R: 170, G: 191, B: 85}, {R: 170, G: 191, B: 170}, {R: 170, G: 191, B: 255}, {R: 170, G: 223, B: 0}, {R: 170, G: 223, B: 85},
	{R: 170, G: 223, B: 170}, {R: 170, G: 223, B: 255}, {R: 170, G: 255, B: 0}, {R: 170, G: 255, B: 85}, {R: 170, G: 255, B: 170}, {R: 170, G: 255, B: 255},
	{R: 212, G: 0, B: 0}, {R: 212, G: 0, B: 85}, {R: 212, G: 0, B: 170}, {R: 212, G: 0, B: 255}, {R: 212, G: 31, B: 0}, {R: 212, G: 31, B: 85},
	{R: 212, G: 31, B: 170}, {R: 212, G: 31, B: 255}, {R: 212, G: 63, B: 0}, {R: 212, G: 63, B: 85}, {R: 212, G: 63, B: 170}, {R: 212, G: 63, B: 255},
	{R: 212, G: 95, B: 0}, {R: 212, G: 95, B: 85}, {R: 212, G: 95, B: 170}, {R: 212, G: 95, B: 255}, {R: 212, G: 127, B: 0}, {R: 212, G: 127, B: 85},
	{R: 212, G: 127, B: 170}, {R: 212, G: 127, B: 255}, {R: 212, G: 159, B: 0}, {R: 212, G: 159, B: 85}, {R: 212, G: 159, B: 170}, {R: 212, G: 159, B: 255},
	{R: 212, G: 191, B: 0}, {R: 212, G: 191, B: 85}, {R: 212, G: 191, B: 170}, {R: 212, G: 191, B: 255}, {R: 212, G: 223, B: 0}, {R: 212, G: 223, B: 85},
	{R: 212, G: 223, B: 170}, {R: 212, G: 223, B: 255}, {R: 212, G: 255, B: 0}, {R: 212, G: 255, B: 85}, {R: 212, G: 255, B: 170}, {R: 212, G: 255, B: 255},
	{R: 255, G: 0, B: 85}, {R: 255, G: 0, B: 170}, {R: 255, G: 31, B: 0}, {R: 255, G: 31, B: 85}, {R: 255, G: 31, B: 170}, {R: 255, G: 31, B: 255},
	{R: 255, G: 63, B: 0}, {R: 255, G: 63, B: 85}, {R: 255, G: 63, B: 170}, {R: 255, G: 63, B: 255}, {R: 255, G: 95, B: 0}, {R: 255, G: 95, B: 85},
	{R: 255, G: 95, B: 170}, {R: 255, G: 95, B: 255}, {R: 255, G: 127, B: 0}, {R: 255, G: 127, B: 85}, {R: 255, G: 127, B: 170}, {R: 255, G: 127, B: 255},
	{R: 255, G: 159, B: 0}, {R: 255, G: 159, B: 85}, {R: 255, G: 159, B: 170}, {R: 255, G: 159, B: 255}, {R: 255, G: 191, B: 0}, {R: 255, G: 191, B: 85},
	{R: 255, G: 191, B: 170}, {R: 255, G: 191, B: 255}, {R: 255, G: 223, B: 0}, {R: 255, G: 223, B: 85}, {R: 255, G: 223, B: 170}, {R: 255, G: 223, B: 255},
	{R: 255, G: 255, B: 85}, {R: 255, G: 255, B: 170}, {R: 204, G: 204, B: 255}, {R: 255, G: 204, B: 255}, {R: 51, G: 255, B: 255}, {R: 102, G: 255, B: 255},
	{R: 153, G: 255, B: 255}, {R: 204, G: 255, B: 255}, {R: 0, G: 127, B: 0}, {R: 0, G: 127, B: 85}, {R: 0, G: 127, B: 170}, {R: 0, G: 127, B: 255},
	{R: 0, G: 159, B: 0}, {R: 0, G: 159, B: 85}, {R: 0, G: 159, B: 170}, {R: 0, G: 159, B: 255}, {R: 0, G: 191, B: 0}, {R: 0, G: 191, B: 85},
	{R: 0, G: 191, B: 170}, {R: 0, G: 191, B: 255}, {R: 0, G: 223, B: 0}, {R: 0, G: 223, B: 85}, {R: 0, G: 223, B: 170}, {R: 0, G: 223, B: 255},
	{R: 0, G: 255, B: 85}, {R: 0, G: 255, B: 170}, {R: 42, G: 0, B: 0}, {R: 42, G: 0, B: 85}, {R: 42, G: 0, B: 170}, {R: 42, G: 0, B: 255},
	{R: 42, G: 31, B: 0}, {R: 42, G: 31, B: 85}, {R: 42, G: 31, B: 170}, {R: 42, G: 31, B: 255}, {R: 42, G: 63, B: 0}, {R: 42, G: 63, B: 85},
	{R: 255, G: 251, B: 240}, {R: 160, G: 160, B: 164}, {R: 128, G: 128, B: 128}, {R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 255, G: 255, B: 0},
	{R: 0, G: 0, B: 255}, {R: 255, G: 0, B: 255}, {R: 0, G: 255, B: 255}, {R: 255, G: 255, B: 255},
}
