package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	fmt.Println("Запуск PayGate sandbox...")

	clientName := "paygate"
	if runtime.GOOS == "windows" {
		clientName = "paygate.exe"
	}
	// запускаем sandbox на фоне
	server := exec.Command("go", "run", "./cmd/sandbox/main.go")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска sandbox: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/paygate/main.go")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		build.Run()
		// если не винда даём права
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	fmt.Println("Sandbox запущен")
	// пишем как запускать клиента
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\paygate.exe")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./paygate")
	}

	server.Wait()
}
