package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// buildUpdateExpr converts a map of field->value plus a list of fields to
// delete into a DynamoDB "SET ... REMOVE ..." expression. Removal matters for
// sparse GSI key attributes (verification_token, reset_token): they must be
// dropped from the item, not set to an empty string.
func buildUpdateExpr(sets map[string]interface{}, removes []string) (expr string, names map[string]string, values map[string]types.AttributeValue, err error) {
	if len(sets) == 0 && len(removes) == 0 {
		return "", nil, nil, fmt.Errorf("no fields to update")
	}
	names = make(map[string]string)
	values = make(map[string]types.AttributeValue)

	i := 0
	if len(sets) > 0 {
		expr = "SET "
		for k, v := range sets {
			nameKey := fmt.Sprintf("#f%d", i)
			valueKey := fmt.Sprintf(":v%d", i)
			names[nameKey] = k
			av, mErr := attributevalue.Marshal(v)
			if mErr != nil {
				return "", nil, nil, fmt.Errorf("marshal field %s: %w", k, mErr)
			}
			values[valueKey] = av
			if i > 0 {
				expr += ", "
			}
			expr += fmt.Sprintf("%s = %s", nameKey, valueKey)
			i++
		}
	}
	if len(removes) > 0 {
		if expr != "" {
			expr += " "
		}
		expr += "REMOVE "
		for j, k := range removes {
			nameKey := fmt.Sprintf("#f%d", i)
			names[nameKey] = k
			if j > 0 {
				expr += ", "
			}
			expr += nameKey
			i++
		}
	}
	return expr, names, values, nil
}
