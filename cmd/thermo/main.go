// cmd/thermo/main.go
package main

func main() {
	Execute()
}
