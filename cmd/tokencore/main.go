// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var currentUser = func() *user.User {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr
}()

var defaultWorkDir = filepath.Join(currentUser.HomeDir, ".tokencore")

var cmdMain = &cobra.Command{
	Use:   "tokencore",
	Short: "Fungible token ledger",
	Run:   printUsageAndExit1,
}

var flagMain struct {
	WorkDir   string
	Database  string
	Authority string
	LogLevel  string
	LogFormat string
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.WorkDir, "work-dir", "w", defaultWorkDir, "Working directory for the ledger database")
	cmdMain.PersistentFlags().StringVarP(&flagMain.Database, "database", "d", "badger", "Database backend: badger, sqlite, or memory")
	cmdMain.PersistentFlags().StringVar(&flagMain.Authority, "authority", "tokencore", "The ledger's controlling identity")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "info", "Log level")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogFormat, "log-format", "plain", "Log format: plain or json")

	viper.SetEnvPrefix("TOKENCORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"work-dir", "database", "authority", "log-level", "log-format"} {
		check(viper.BindPFlag(name, cmdMain.PersistentFlags().Lookup(name)))
	}
}

func main() {
	_ = cmdMain.Execute()
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}
