package main

import (
	_ "github.com/denisenkom/go-mssqldb" // Register SQL Server driver
)

func main() {
	// Bootstrap (Cobra handles CLI)
	Execute()
}
