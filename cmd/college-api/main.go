package main

import (
	"fmt"
	"os"
)

// @title College Admin API
// @version 1.0.0
// @description CRUD administration backend for the college schema
// @BasePath /api
// @schemes http

func main() {
	if err := getRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
