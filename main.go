// Copyright (C) 2023-2025, Snowball Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/snowball-lang/installer/cmd"
)

func main() {
	cmd.Execute()
}
