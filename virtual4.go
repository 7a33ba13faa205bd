/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andreas-jonsson/virtual4/cart/demo"
	"github.com/andreas-jonsson/virtual4/console"
	"github.com/andreas-jonsson/virtual4/platform"
	"github.com/andreas-jonsson/virtual4/version"
)

var (
	savePath = "virtual4.disk"
	scale    = 4
)

var (
	noAudio,
	ver bool
)

func init() {
	if p, ok := os.LookupEnv("V4_DEFAULT_SAVE_PATH"); ok {
		savePath = p
	}

	flag.BoolVar(&ver, "v", false, "Print version information")
	flag.BoolVar(&noAudio, "no-audio", false, "Disable audio")
	flag.StringVar(&savePath, "save", savePath, "Path to the persistent storage file")
	flag.IntVar(&scale, "scale", scale, "Window scale factor")
}

func main() {
	flag.Parse()

	if ver {
		fmt.Printf("%s (%s)\n", version.Current.FullString(), version.Hash)
		return
	}

	var configs []platform.Config
	configs = append(configs, platform.ConfigWithWindowScale(scale))
	if !noAudio {
		configs = append(configs, platform.ConfigWithAudio)
	}

	printLogo()
	platform.Start(mainLoop, configs...)
}

func mainLoop(p platform.Platform) {
	c := console.New(p, console.Config{SavePath: savePath})
	c.Run(demo.New())
}

func printLogo() {
	fmt.Print("Virtual4 - Fantasy Game Console\n")
	fmt.Printf("v%s - %s\n\n", version.Current.FullString(), version.Copyright)
}
