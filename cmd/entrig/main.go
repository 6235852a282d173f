// Package main provides the entrig CLI, which prepares Expo / React Native
// iOS projects for push notifications.
package main

func main() {
	Execute()
}
