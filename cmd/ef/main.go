package main

import "github.com/Vinicius-Bedeschi/Projeto-Enem/cmd/ef/root"

func main() {
	root.Execute()
}
