/*
Copyright © 2024 the RVIC authors.
This file is part of RVIC.

RVIC is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

RVIC is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with RVIC.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command rvic is a command-line interface to the metadata shared by the
// RVIC streamflow routing model.
package main

import (
	"fmt"
	"os"

	"github.com/UW-Hydro/rvic/rvicutil"
)

func main() {
	if err := rvicutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
