// rpccall is a command-line JSON-RPC 2.0 client: it dials an endpoint,
// invokes one method, and prints the result.
package main

func main() {
	Execute()
}
