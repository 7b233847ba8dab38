// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/pbxpatch/cmd/pbxpatch/cmd"
)

func main() {
	cmd.Execute()
}
