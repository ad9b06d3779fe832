package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	squareOrder  int
	squareMethod string
	squareApply  string
	squareLayout bool
)

func init() {
	squareCmd.Flags().IntVarP(&squareOrder, "order", "n", 0, "order of the square")
	squareCmd.Flags().StringVarP(&squareMethod, "method", "m", "", "construction method (siamese or doubly-even)")
	squareCmd.Flags().StringVarP(&squareApply, "apply", "a", "", "comma-separated transformations, e.g. cw,outer1,rows1-2")
	squareCmd.Flags().BoolVar(&squareLayout, "layout", false, "print the layout instead of the grid")
	_ = squareCmd.MarkFlagRequired("order")
}

// resetSquareCommandState resets the square command's global state for testing.
func resetSquareCommandState() {
	squareOrder = 0
	squareMethod = ""
	squareApply = ""
	squareLayout = false
}

var squareCmd = &cobra.Command{
	Use:   "square",
	Short: "Build and print a magic square",
	Long: `Builds a magic square of the given order and applies transformations
to it in order.

Odd orders use the Siamese method and orders divisible by 4 use the
doubly-even method. Transformations:
  cw, ccw          rotate clockwise or counter-clockwise
  outer<i>         swap row and column pair i with its mirror
  rows<i>-<j>      exchange the mirrored pairs i and j
  cols<i>-<j>      same exchange, named by column

Examples:
  sator square --order 3
  sator square --order 8 --apply cw,outer2,rows1-3
  sator square --order 5 --apply ccw --layout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting square command")
		Logger.Debugf("Flags: order=%d, method=%q, apply=%q", squareOrder, squareMethod, squareApply)

		result, err := workflows.BuildSquare(context.Background(), workflows.SquareOptions{
			Order:  squareOrder,
			Method: squareMethod,
			Apply:  squareApply,
		})
		if err != nil {
			return formatError(err)
		}
		Logger.Infof("Built order %d square with %s and %d transformations", squareOrder, result.Method, len(result.Applied))

		if squareLayout {
			fmt.Println(result.Square.Layout())
			return nil
		}
		fmt.Print(ui.FormatGrid(result.Square.Rows(), result.Square.MagicConstant()))
		return nil
	},
}
