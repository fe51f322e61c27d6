// productctl manages the product database: schema migration and demo data.
package main

func main() {
	Execute()
}
