// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package main

import "github.com/ondrahome/simkernel/internal/cli"

func main() {
	cli.Execute()
}
