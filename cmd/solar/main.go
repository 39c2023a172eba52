package main

import "runtime"

func init() {
	// GLFW and the GPU surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
