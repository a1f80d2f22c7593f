package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <position> <text>",
	Short: "Edit a session's action text",
	Long: `Edit a session's action text.

Positions are the 1-based numbers printed by "harulog timeline".`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <position>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the whole day's record",
	RunE:  runResetDay,
}

var resetYes bool

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	session, err := sessionAtPosition(svc.Sessions(), args[0])
	if err != nil {
		return err
	}

	svc.EditAction(ctx, session.ID, args[1])
	fmt.Printf("수정 완료: %s\n", args[1])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	session, err := sessionAtPosition(svc.Sessions(), args[0])
	if err != nil {
		return err
	}

	svc.Delete(ctx, session.ID)
	fmt.Println("삭제 완료")
	return nil
}

func runResetDay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !resetYes {
		fmt.Print("오늘의 기록을 모두 삭제할까요? (y/N) ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("취소되었습니다.")
			return nil
		}
	}

	svc, cleanup, err := buildService(ctx, false)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("기록이 삭제되었습니다.")
	return nil
}
