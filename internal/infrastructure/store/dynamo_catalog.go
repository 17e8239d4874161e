package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/example/shopfront/internal/domain/catalog"
)

// DynamoCatalog reads the product collection from a DynamoDB table.
type DynamoCatalog struct {
	client    *dynamodb.Client
	tableName string
}

// dynamoProduct represents the DynamoDB item structure
type dynamoProduct struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Price     int    `dynamodbav:"price"`
	ImageURL  string `dynamodbav:"image_url"`
	SortOrder int    `dynamodbav:"sort_order"`
}

func NewDynamoCatalog(client *dynamodb.Client, tableName string) *DynamoCatalog {
	return &DynamoCatalog{
		client:    client,
		tableName: tableName,
	}
}

// Products scans the whole table. DynamoDB does not return items in a
// stable order, so the catalog order is carried by a sort_order attribute.
func (c *DynamoCatalog) Products(ctx context.Context) ([]catalog.Product, error) {
	var items []dynamoProduct
	var lastKey map[string]types.AttributeValue

	for {
		out, err := c.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(c.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan products table: %w", err)
		}

		var page []dynamoProduct
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].ID < items[j].ID
	})

	products := make([]catalog.Product, 0, len(items))
	for _, item := range items {
		products = append(products, catalog.Product{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
		})
	}
	return products, nil
}
