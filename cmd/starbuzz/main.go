package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/menu"
)

var (
	pricesFile = flag.String("prices", "", "JSON file of item prices in dollars, e.g. {\"DarkRoast\": 0.99}")
	asJSON     = flag.Bool("json", false, "print an itemized JSON receipt")
	listMenu   = flag.Bool("menu", false, "print the menu and exit")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of starbuzz:\n")
	fmt.Fprintf(os.Stderr, "\tstarbuzz [flags] Beverage [Condiment...]\n")
	fmt.Fprintf(os.Stderr, "\tstarbuzz [flags] \"DarkRoast, Mocha, Whip\"\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("starbuzz: ")
}

func main() {
	flag.Usage = Usage
	flag.Parse()

	var opts []menu.Option
	if len(*pricesFile) > 0 {
		table, err := loadPrices(*pricesFile)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, menu.Prices(table))
	}
	m := menu.New(opts...)

	if *listMenu {
		printMenu(m)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	order, err := menu.ParseOrder(strings.Join(args, ","))
	if err != nil {
		log.Fatal(err)
	}
	b, err := m.Create(context.Background(), order)
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		data, err := beverage.NewReceipt(b).JSON()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
		return
	}
	fmt.Printf("%s $%s\n", b.Description(), b.Cost())
}

func loadPrices(name string) (beverage.PriceTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return beverage.LoadPriceTable(f)
}

func printMenu(m *menu.Menu) {
	fmt.Println("Beverages:")
	for _, name := range m.Beverages() {
		price, _ := m.Price(name)
		fmt.Printf("\t%-12s $%s\n", name, price)
	}
	fmt.Println("Condiments:")
	for _, name := range m.Condiments() {
		price, _ := m.Price(name)
		fmt.Printf("\t%-12s $%s\n", name, price)
	}
}
