// Package catalog holds the keyword tables driving classification. The
// tables are data consumed by the matching code in internal/parse; extending
// a category is an edit here, never a logic change.
package catalog

// ExpenseRule maps keywords to one preset expense category. Rules are
// evaluated in slice order; the first rule whose keyword matches (and whose
// exclusions do not) wins. Exclusions exist because some phrases contain a
// category keyword without belonging to it: "买单车" is a purchase, not a
// bus ride.
type ExpenseRule struct {
	Category   string
	Keywords   []string
	Exclusions []string
}

// DefaultExpenseCategory is assigned when no rule matches.
const DefaultExpenseCategory = "其他"

// ExpenseRules returns the preset expense rules in match-priority order.
func ExpenseRules() []ExpenseRule {
	return []ExpenseRule{
		{
			Category: "餐饮",
			Keywords: []string{
				"早饭", "午饭", "晚饭", "早餐", "午餐", "晚餐", "夜宵", "宵夜",
				"吃饭", "吃", "喝", "外卖", "餐厅", "饭店", "食堂", "火锅",
				"烧烤", "奶茶", "咖啡", "零食", "水果", "买菜", "聚餐",
			},
			Exclusions: []string{"吃灰", "零食机"},
		},
		{
			Category: "交通",
			Keywords: []string{
				"打车", "出租车", "滴滴", "网约车", "公交", "地铁", "高铁",
				"火车", "机票", "飞机", "加油", "停车", "过路费", "单车",
				"共享单车", "骑车", "公交卡", "交通卡",
			},
			Exclusions: []string{"买单车", "健身卡", "玩具车", "买车"},
		},
		{
			Category: "娱乐",
			Keywords: []string{
				"电影", "游戏", "KTV", "唱歌", "演出", "门票", "旅游",
				"景点", "酒吧", "桌游", "演唱会", "充值点卡",
			},
		},
		{
			Category: "租房水电",
			Keywords: []string{
				"房租", "租房", "水费", "电费", "燃气费", "煤气费", "物业费",
				"宽带", "网费", "暖气费",
			},
		},
		{
			Category: "生活",
			Keywords: []string{
				"日用品", "超市", "洗衣", "理发", "剪头", "快递", "话费",
				"充话费", "纸巾", "洗发水", "牙膏", "清洁",
			},
		},
		{
			Category: "医疗",
			Keywords: []string{
				"医院", "看病", "买药", "药店", "药", "挂号", "体检", "牙医",
				"疫苗", "输液",
			},
		},
		{
			Category: "教育",
			Keywords: []string{
				"学费", "买书", "书", "课程", "培训", "考试", "报名费",
				"文具", "网课", "学习", "辅导",
			},
		},
		{
			Category: "购物",
			Keywords: []string{
				"买", "购物", "衣服", "鞋", "裤子", "包", "化妆品", "京东",
				"淘宝", "拼多多", "手机", "电脑", "耳机", "家电",
			},
		},
	}
}

// IncomeRule maps keywords to one income category.
type IncomeRule struct {
	Category string
	Keywords []string
}

// IncomeRules returns the income rules in match-priority order. Any match
// overrides the expense classification entirely.
func IncomeRules() []IncomeRule {
	return []IncomeRule{
		{Category: "工资薪酬", Keywords: []string{"工资", "薪水", "发薪", "月薪", "薪酬", "发工资"}},
		{Category: "投资收益", Keywords: []string{"股票", "基金", "分红", "利息", "理财收益", "卖出"}},
		{Category: "副业兼职", Keywords: []string{"兼职", "副业", "接单", "外快", "稿费"}},
		{Category: "奖金补贴", Keywords: []string{"奖金", "年终奖", "补贴", "津贴", "绩效"}},
		{Category: "退款返现", Keywords: []string{"退款", "返现", "退钱", "报销", "退押金"}},
		{Category: "转账收入", Keywords: []string{"收到转账", "转账收到", "收红包", "收到红包"}},
		{Category: "其他收入", Keywords: []string{"收入", "进账", "收到"}},
	}
}

// PresetExpenseCategories lists every preset expense category name,
// including the default.
func PresetExpenseCategories() []string {
	rules := ExpenseRules()
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.Category)
	}
	return append(names, DefaultExpenseCategory)
}

// IncomeCategories lists every income category name.
func IncomeCategories() []string {
	rules := IncomeRules()
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Category)
	}
	return names
}

// IsPresetExpense reports whether name is one of the preset expense
// categories. User-defined categories are everything else.
func IsPresetExpense(name string) bool {
	for _, c := range PresetExpenseCategories() {
		if c == name {
			return true
		}
	}
	return false
}
