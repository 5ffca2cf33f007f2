// cmd/server/main.go
package main

func main() {
	Execute()
}
