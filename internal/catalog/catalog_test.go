package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseRuleOrder(t *testing.T) {
	var order []string
	for _, r := range ExpenseRules() {
		order = append(order, r.Category)
	}

	// 餐饮 must outrank 购物 so "买菜" stays a meal despite the generic 买
	// keyword, and 交通 must outrank 购物 for the same reason with 骑车.
	assert.Equal(t, []string{"餐饮", "交通", "娱乐", "租房水电", "生活", "医疗", "教育", "购物"}, order)
}

func TestExpenseRulesNonEmpty(t *testing.T) {
	for _, r := range ExpenseRules() {
		assert.NotEmpty(t, r.Keywords, "rule %s has no keywords", r.Category)
	}
}

func TestTransportExclusions(t *testing.T) {
	var transport ExpenseRule
	for _, r := range ExpenseRules() {
		if r.Category == "交通" {
			transport = r
		}
	}
	assert.Contains(t, transport.Exclusions, "买单车")
	assert.Contains(t, transport.Exclusions, "健身卡")
}

func TestPresetExpenseCategoriesIncludeDefault(t *testing.T) {
	names := PresetExpenseCategories()

	assert.Contains(t, names, DefaultExpenseCategory)
	assert.Len(t, names, len(ExpenseRules())+1)
}

func TestIsPresetExpense(t *testing.T) {
	assert.True(t, IsPresetExpense("餐饮"))
	assert.True(t, IsPresetExpense("其他"))
	assert.False(t, IsPresetExpense("宠物"))
	assert.False(t, IsPresetExpense("工资薪酬"))
}

func TestIncomeCategories(t *testing.T) {
	names := IncomeCategories()

	assert.Len(t, names, 7)
	assert.Equal(t, "工资薪酬", names[0])
	assert.Equal(t, "其他收入", names[len(names)-1])
}
