package cellview_test

import (
	"context"
	"fmt"

	"github.com/aretw0/cellview"
	"github.com/aretw0/cellview/pkg/adapters/memory"
	"github.com/aretw0/cellview/pkg/domain"
)

func Example() {
	eng := cellview.New()
	region := memory.NewRegion()
	ctx := context.Background()

	payload := domain.OutputPayload{
		Type: domain.MIMETable,
		Data: []byte(`{"headers":["name","score"],"rows":[["ada",3]]}`),
	}
	if err := eng.Display(ctx, region, payload); err != nil {
		fmt.Println("error:", err)
		return
	}

	markup, _ := region.Markup(ctx)
	fmt.Println(markup)
	// Output:
	// <div class="table-container"><table class="table"><thead><tr><th>name</th><th>score</th></tr></thead><tbody><tr><td>ada</td><td>3</td></tr></tbody></table></div>
}

func ExampleEngine_Format() {
	eng := cellview.New()

	value, err := eng.Parse(domain.OutputPayload{
		Type: domain.MIMEChart,
		Data: []byte(`{"values":[10,20,5]}`),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(eng.Format(domain.MIMEChart, value))
	// Output:
	// <div class="chart"><h3>Chart</h3><div class="chart-content"><svg width="400" height="120" viewBox="0 0 400 120"><polyline points="0,55 50,10 100,77.5" fill="none" stroke="#0078d4" stroke-width="2"/><circle cx="0" cy="55" r="3" fill="#0078d4"/><circle cx="50" cy="10" r="3" fill="#0078d4"/><circle cx="100" cy="77.5" r="3" fill="#0078d4"/></svg></div></div>
}
