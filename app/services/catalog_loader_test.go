package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/app/services"
)

const feedHeader = "id,name,price,image_url,best_price,description,category,colors,storage,specs\n"

func TestParseFeedBasicRow(t *testing.T) {
	feed := feedHeader +
		`p1,iPhone 15,"1,099.99",https://cdn/img.jpg,TRUE,Latest model,phones,Black; Blue,128GB;256GB,"{""chip"":""A16""}"` + "\n"

	products, warnings := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 1)
	assert.Empty(t, warnings)

	p := products[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "iPhone 15", p.Name)
	assert.Equal(t, 1099.99, p.Price)
	assert.True(t, p.BestPrice)
	assert.Equal(t, []string{"Black", "Blue"}, p.Colors)
	assert.Equal(t, []string{"128GB", "256GB"}, p.Storage)
	assert.Equal(t, map[string]string{"chip": "A16"}, p.Specs)
	assert.Equal(t, []string{"https://cdn/img.jpg"}, p.Images)
}

func TestParseFeedBlankIDGetsSynthesized(t *testing.T) {
	feed := feedHeader +
		",No ID,10,,,desc,misc,,,\n" +
		"p2,Has ID,20,,,desc,misc,,,\n"

	products, warnings := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 2)
	assert.Empty(t, warnings)
	// header is line 1, so the first data row is line 2
	assert.Equal(t, "row-2", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestParseFeedDuplicateIDSkipsLaterRow(t *testing.T) {
	feed := feedHeader +
		"p1,First,10,,,d,c,,,\n" +
		"p1,Second,20,,,d,c,,,\n"

	products, warnings := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 1)
	assert.Equal(t, "First", products[0].Name)

	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Line)
	assert.Contains(t, warnings[0].Message, "duplicate id")
}

func TestParseFeedInvalidSpecsKeepsRow(t *testing.T) {
	feed := feedHeader +
		"p1,Phone,10,,,d,c,,,not-json\n"

	products, warnings := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 1)
	assert.Equal(t, map[string]string{}, products[0].Specs)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "specs")
}

func TestParseFeedUnparseablePriceDefaultsToZero(t *testing.T) {
	feed := feedHeader +
		"p1,Phone,N/A,,,d,c,,,\n" +
		"p2,Phone,,,,d,c,,,\n"

	products, warnings := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 2)
	assert.Empty(t, warnings)
	assert.Equal(t, 0.0, products[0].Price)
	assert.Equal(t, 0.0, products[1].Price)
}

func TestParseFeedRaggedRows(t *testing.T) {
	// short row: missing trailing cells fall back to zero values
	feed := feedHeader + "p1,Phone,10\n"

	products, warnings := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "", products[0].Category)
	assert.Empty(t, products[0].Colors)
	assert.Empty(t, products[0].Images)
}

func TestParseFeedPreservesRowOrder(t *testing.T) {
	feed := feedHeader +
		"c,Charlie,1,,,d,x,,,\n" +
		"a,Alpha,2,,,d,x,,,\n" +
		"b,Bravo,3,,,d,x,,,\n"

	products, _ := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 3)
	assert.Equal(t, "c", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
	assert.Equal(t, "b", products[2].ID)
}

func TestParseFeedEmptyInput(t *testing.T) {
	products, warnings := services.ParseFeed(strings.NewReader(""))
	assert.Empty(t, products)
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Line)
}

func TestParseFeedBestPriceCaseInsensitive(t *testing.T) {
	feed := feedHeader +
		"p1,A,1,,true,d,c,,,\n" +
		"p2,B,1,,TRUE,d,c,,,\n" +
		"p3,C,1,,false,d,c,,,\n" +
		"p4,D,1,,,d,c,,,\n"

	products, _ := services.ParseFeed(strings.NewReader(feed))
	require.Len(t, products, 4)
	assert.True(t, products[0].BestPrice)
	assert.True(t, products[1].BestPrice)
	assert.False(t, products[2].BestPrice)
	assert.False(t, products[3].BestPrice)
}
